package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"magiars-be/internal/config"
	"magiars-be/internal/dto"
	"magiars-be/internal/entity"
	"magiars-be/internal/pkg/logger"
	"magiars-be/internal/repository/specification"
	"magiars-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	metaGraphBaseURL = "https://graph.facebook.com/v18.0"
	tokenTTL         = 7 * 24 * time.Hour
)

// metaEndpoint pins the Graph API version the frontend dialog uses.
var metaEndpoint = oauth2.Endpoint{
	AuthURL:  "https://www.facebook.com/v18.0/dialog/oauth",
	TokenURL: metaGraphBaseURL + "/oauth/access_token",
}

type IAuthService interface {
	LoginURL(ctx context.Context) (*dto.LoginURLResponse, error)
	MetaCallback(ctx context.Context, req *dto.MetaCallbackRequest) (*dto.LoginResponse, error)
	Verify(ctx context.Context, userId string) (*dto.VerifyResponse, error)
	DeleteByMetaId(ctx context.Context, metaId string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
	oauth      *oauth2.Config
	httpClient *http.Client
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cfg:        cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.Meta.AppId,
			ClientSecret: cfg.Meta.AppSecret,
			RedirectURL:  cfg.Meta.RedirectURI,
			Scopes:       []string{"public_profile"},
			Endpoint:     metaEndpoint,
		},
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

func (s *authService) LoginURL(ctx context.Context) (*dto.LoginURLResponse, error) {
	if s.cfg.Meta.AppId == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Meta App ID not configured")
	}

	loginUrl := s.oauth.AuthCodeURL("", oauth2.SetAuthURLParam("display", "popup"))
	return &dto.LoginURLResponse{LoginUrl: loginUrl}, nil
}

func (s *authService) MetaCallback(ctx context.Context, req *dto.MetaCallbackRequest) (*dto.LoginResponse, error) {
	token, err := s.oauth.Exchange(ctx, req.Code)
	if err != nil {
		s.log.Error("auth", "Meta token exchange failed", map[string]interface{}{"error": err.Error()})
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Authentication failed")
	}

	profile, err := s.fetchProfile(ctx, token.AccessToken)
	if err != nil {
		s.log.Error("auth", "Meta profile fetch failed", map[string]interface{}{"error": err.Error()})
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Authentication failed")
	}

	user, err := s.upsertUser(ctx, profile)
	if err != nil {
		return nil, err
	}

	signed, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("auth", "User logged in via Meta", map[string]interface{}{
		"user_id": user.Id.String(),
		"meta_id": user.MetaId,
	})

	return &dto.LoginResponse{
		Success:     true,
		User:        toUserDTO(user),
		Token:       signed,
		AccessToken: token.AccessToken,
	}, nil
}

func (s *authService) Verify(ctx context.Context, userId string) (*dto.VerifyResponse, error) {
	id, err := uuid.Parse(userId)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ById{Id: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return &dto.VerifyResponse{User: toUserDTO(user)}, nil
}

// DeleteByMetaId removes the user and everything owned by them. Meta's
// data-deletion callback identifies users by their Graph subject id.
func (s *authService) DeleteByMetaId(ctx context.Context, metaId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByMetaId{MetaId: metaId})
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	conversations, err := uow.ConversationRepository().FindAll(ctx, specification.ByUserId{UserId: user.Id})
	if err != nil {
		return err
	}
	for _, conv := range conversations {
		if err := uow.MessageRepository().DeleteAllByConversationKey(ctx, conv.ConversationId); err != nil {
			return err
		}
	}

	if err := uow.RatingRepository().DeleteAllByUserId(ctx, user.Id); err != nil {
		return err
	}
	if err := uow.EscalationRepository().DeleteAllByUserId(ctx, user.Id); err != nil {
		return err
	}
	if err := uow.IntegrationRepository().DeleteAllByUserId(ctx, user.Id); err != nil {
		return err
	}
	if err := uow.ConversationRepository().DeleteAllByUserId(ctx, user.Id); err != nil {
		return err
	}
	if err := uow.UserRepository().DeleteById(ctx, user.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.log.Info("auth", "User data deleted", map[string]interface{}{"meta_id": metaId})
	return nil
}

type metaProfile struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			Url string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

func (s *authService) fetchProfile(ctx context.Context, accessToken string) (*metaProfile, error) {
	endpoint := fmt.Sprintf("%s/me?fields=id,name,email,picture&access_token=%s",
		metaGraphBaseURL, url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("graph api status %d: %s", resp.StatusCode, string(body))
	}

	var profile metaProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// upsertUser keys on the Meta subject id. A concurrent first login can make
// the insert hit the unique index, in which case it is retried as an update.
func (s *authService) upsertUser(ctx context.Context, profile *metaProfile) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users := uow.UserRepository()

	existing, err := users.FindOne(ctx, specification.ByMetaId{MetaId: profile.Id})
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Name = profile.Name
		existing.Email = profile.Email
		existing.Avatar = profile.Picture.Data.Url
		existing.LoginDate = time.Now()
		if err := users.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	user := &entity.User{
		MetaId:    profile.Id,
		Name:      profile.Name,
		Email:     profile.Email,
		Avatar:    profile.Picture.Data.Url,
		LoginDate: time.Now(),
	}
	if err := users.Create(ctx, user); err != nil {
		raced, findErr := users.FindOne(ctx, specification.ByMetaId{MetaId: profile.Id})
		if findErr != nil || raced == nil {
			return nil, err
		}
		raced.Name = profile.Name
		raced.Email = profile.Email
		raced.Avatar = profile.Picture.Data.Url
		raced.LoginDate = time.Now()
		if err := users.Update(ctx, raced); err != nil {
			return nil, err
		}
		return raced, nil
	}
	return user, nil
}

func (s *authService) issueToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"meta_id": user.MetaId,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.App.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func toUserDTO(user *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Id:     user.Id.String(),
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}
}
