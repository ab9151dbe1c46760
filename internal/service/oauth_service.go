package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"procure-ai-be/internal/dto"
	"procure-ai-be/internal/entity"
	"procure-ai-be/internal/repository/specification"
	"procure-ai-be/internal/repository/unitofwork"

	"procure-ai-be/pkg/events"
	pktNats "procure-ai-be/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type IOAuthService interface {
	// VerifyGoogleToken validates an id_token from Google Identity Services
	// and signs the user in, creating the account on first login.
	VerifyGoogleToken(ctx context.Context, credential string) (*dto.AuthResponse, error)

	GetLoginURL(provider string) (string, error)
	HandleCallback(ctx context.Context, provider string, code string) (*dto.AuthResponse, error)
}

type oauthService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	googleConf     *oauth2.Config
	clientID       string
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		googleConf:     conf,
		clientID:       conf.ClientID,
	}
}

type googleIdentity struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *oauthService) VerifyGoogleToken(ctx context.Context, credential string) (*dto.AuthResponse, error) {
	tokenInfoURL := "https://oauth2.googleapis.com/tokeninfo?id_token=" + url.QueryEscape(credential)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("invalid Google token")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var info struct {
		googleIdentity
		Aud string `json:"aud"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}

	if s.clientID != "" && info.Aud != s.clientID {
		return nil, errors.New("token was not issued for this application")
	}
	if info.Email == "" {
		return nil, errors.New("Google token carries no email")
	}

	return s.loginWithIdentity(ctx, info.googleIdentity)
}

func (s *oauthService) GetLoginURL(provider string) (string, error) {
	if provider != "google" {
		return "", errors.New("unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider string, code string) (*dto.AuthResponse, error) {
	if provider != "google" {
		return nil, errors.New("unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	userInfoURL := "https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + url.QueryEscape(token.AccessToken)
	resp, err := http.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var googleUser struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, err
	}
	if googleUser.Email == "" {
		return nil, errors.New("Google returned no email")
	}

	return s.loginWithIdentity(ctx, googleIdentity{
		Sub:     googleUser.ID,
		Email:   googleUser.Email,
		Name:    googleUser.Name,
		Picture: googleUser.Picture,
	})
}

// loginWithIdentity finds or creates the local account for a verified
// Google identity and issues our own JWT.
func (s *oauthService) loginWithIdentity(ctx context.Context, identity googleIdentity) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: identity.Email})
	if err != nil {
		return nil, err
	}

	if user == nil {
		avatar := identity.Picture
		user = &entity.User{
			Id:        uuid.New(),
			Email:     identity.Email,
			FullName:  identity.Name,
			Role:      entity.UserRoleUser,
			Status:    entity.UserStatusActive,
			AvatarURL: &avatar,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		defer uow.Rollback()

		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}

		provider := &entity.UserProvider{
			Id:             uuid.New(),
			UserId:         user.Id,
			ProviderName:   "google",
			ProviderUserId: identity.Sub,
			AvatarURL:      identity.Picture,
			CreatedAt:      time.Now(),
		}
		if err := uow.UserRepository().CreateProvider(ctx, provider); err != nil {
			return nil, err
		}

		if err := uow.Commit(); err != nil {
			return nil, err
		}

		s.publishAsync(events.NewUserRegistered(user.Id.String(), user.Email))
	} else if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("account is blocked")
	}

	token, err := signToken(user)
	if err != nil {
		return nil, err
	}

	s.publishAsync(events.NewUserLogin(user.Id.String(), user.Email, "google"))

	return &dto.AuthResponse{Token: token, User: toProfile(user)}, nil
}

func (s *oauthService) publishAsync(event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("Error publishing %s event: %v\n", event.EventType(), err)
		}
	}()
}
