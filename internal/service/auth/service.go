package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionPublisher delivers session.changed events to a user's open streams.
type SessionPublisher interface {
	Publish(userID string, event sse.Event)
}

type AuthServiceImpl struct {
	transactor database.Transactor
	user.UserRepository
	jwt.Service
	auth.RefreshTokenRepository
	publisher  SessionPublisher
	bcryptCost int
	now        func() time.Time

	comparePassword func(hash, password []byte) error
	// fallbackHash is compared against when the email is unknown, so both
	// paths cost one bcrypt comparison.
	fallbackOnce sync.Once
	fallbackHash []byte
}

func NewAuthService(
	transactor database.Transactor,
	userRepository user.UserRepository,
	jwtService jwt.Service,
	refreshTokenRepository auth.RefreshTokenRepository,
	publisher SessionPublisher,
) auth.AuthService {
	return &AuthServiceImpl{
		transactor:             transactor,
		UserRepository:         userRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
		publisher:              publisher,
		bcryptCost:             bcrypt.DefaultCost,
		now:                    time.Now,
		comparePassword:        bcrypt.CompareHashAndPassword,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) unknownUserHash() []byte {
	a.fallbackOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), a.bcryptCost)
		if err != nil {
			hash = []byte("$2a$10$")
		}
		a.fallbackHash = hash
	})
	return a.fallbackHash
}

func (a *AuthServiceImpl) publishSession(userID string, state string) {
	if a.publisher == nil {
		return
	}
	a.publisher.Publish(userID, sse.Event{
		UserID: userID,
		Event:  sse.EventSessionChanged,
		Data:   map[string]string{"state": state},
	})
}

// issueTokens creates an access/refresh token pair and stores the refresh token.
// ctx may carry a transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var (
		tokenResponse auth.TokenResponse
		err           error
	)

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Name, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.CreateRefreshToken(ctx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}

	tokenResponse.Session = auth.NewSessionResponse(userData)
	return tokenResponse, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, registerReq auth.RegisterRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := registerReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	role, err := user.ParseRole(registerReq.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	hashedPassword, err := a.hashPassword(registerReq.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	var tokenResponse auth.TokenResponse
	err = a.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		exists, err := a.ExistsByEmail(txCtx, registerReq.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return auth.ErrEmailAlreadyExists
		}

		createdUser, err := a.UserRepository.Create(txCtx, user.User{
			ID:           id.String(),
			Email:        registerReq.Email,
			Name:         registerReq.Name,
			PasswordHash: hashedPassword,
			Role:         role,
			CreatedAt:    a.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		tokenResponse, err = a.issueTokens(txCtx, createdUser, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	a.publishSession(tokenResponse.Session.UserID, auth.SessionSignedIn)
	return tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	role, err := user.ParseRole(loginReq.Role)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			_ = a.comparePassword(a.unknownUserHash(), []byte(loginReq.Password))
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.comparePassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if userData.Role != role {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	err = a.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		tokenResponse, err = a.issueTokens(txCtx, userData, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	a.publishSession(userData.ID, auth.SessionSignedIn)
	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	var userID string
	err := a.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		owner, isRevoked, err := a.IsRefreshTokenRevoked(txCtx, token, a.now())
		if err != nil {
			return auth.ErrInvalidToken
		}
		userID = owner
		if !isRevoked {
			if err := a.RevokeRefreshToken(txCtx, token); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.publishSession(userID, auth.SessionSignedOut)
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != jwt.TokenTypeRefresh {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userID, isRevoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken, a.now())
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrUserNotFound
	}

	var accessTokenResponse auth.AccessTokenResponse
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Name, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	accessTokenResponse.Session = auth.NewSessionResponse(userData)

	return accessTokenResponse, nil
}

// CurrentSession implements auth.AuthService.
func (a *AuthServiceImpl) CurrentSession(ctx context.Context, userID string) (auth.SessionResponse, error) {
	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.SessionResponse{}, auth.ErrUserNotFound
		}
		return auth.SessionResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return auth.NewSessionResponse(userData), nil
}
