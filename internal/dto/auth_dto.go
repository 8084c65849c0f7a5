package dto

type LoginURLResponse struct {
	LoginUrl string `json:"loginUrl"`
}

type MetaCallbackRequest struct {
	Code string `json:"code" validate:"required"`
}

type UserDTO struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type LoginResponse struct {
	Success     bool    `json:"success"`
	User        UserDTO `json:"user"`
	Token       string  `json:"token"`
	AccessToken string  `json:"accessToken"`
}

type VerifyResponse struct {
	User UserDTO `json:"user"`
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DataDeletionRequest struct {
	UserId        string `json:"user_id"`
	SignedRequest string `json:"signed_request"`
}

// DataDeletionResponse is the exact JSON shape Meta's data-deletion
// callback contract requires, always returned with HTTP 200.
type DataDeletionResponse struct {
	Url              string `json:"url"`
	ConfirmationCode string `json:"confirmation_code"`
}
