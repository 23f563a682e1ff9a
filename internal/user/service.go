package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/certlab/certprep-lambda/internal/config"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrOAuthFailed  = errors.New("google oauth exchange failed")
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type UserService interface {
	LoginWithGoogle(ctx context.Context, code string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	return &userService{
		repo: repo,
		oauthConfig: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *userService) LoginWithGoogle(ctx context.Context, code string) (*User, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google authorization code")
		return nil, ErrOAuthFailed
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, ErrOAuthFailed
	}

	u, err := s.repo.FindByGoogleID(info.ID)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by Google ID")
		return nil, err
	}

	if u == nil {
		u = &User{
			ID:        uuid.New(),
			GoogleID:  info.ID,
			Email:     info.Email,
			Name:      info.Name,
			AvatarURL: info.Picture,
			Role:      "user",
		}
		if token.RefreshToken != "" {
			encrypted, err := config.Encrypt(token.RefreshToken)
			if err != nil {
				log.WithError(err).Error("Failed to encrypt refresh token")
				return nil, err
			}
			u.EncryptedRefreshToken = encrypted
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user")
			return nil, err
		}
		log.WithField("user_id", u.ID).Info("New user registered via Google")
		return u, nil
	}

	u.Email = info.Email
	u.Name = info.Name
	u.AvatarURL = info.Picture
	if token.RefreshToken != "" {
		encrypted, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt refresh token")
			return nil, err
		}
		u.EncryptedRefreshToken = encrypted
	}
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to update user on login")
		return nil, err
	}

	return u, nil
}

func (s *userService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	client.Timeout = 10 * time.Second

	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to find user by ID")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
