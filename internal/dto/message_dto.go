package dto

// HistoryTurn is one prior turn sent by the widget alongside a new message.
type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SendMessageRequest struct {
	Message             string        `json:"message" validate:"required"`
	UserId              string        `json:"userId" validate:"required,uuid"`
	ConversationId      string        `json:"conversationId"`
	ConversationHistory []HistoryTurn `json:"conversationHistory"`
	IsFirstMessage      bool          `json:"isFirstMessage"`
}

type SendMessageResponse struct {
	Reply              string `json:"reply"`
	RequiresEscalation bool   `json:"requiresEscalation"`
	OutOfHours         bool   `json:"outOfHours,omitempty"`
	ShowRating         bool   `json:"showRating,omitempty"`
	Category           string `json:"category,omitempty"`
	ConversationId     string `json:"conversationId"`
	Title              string `json:"title,omitempty"`
}
