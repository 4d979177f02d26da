package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/recipe-tracker/internal/config"
	"github.com/MKhiriev/recipe-tracker/internal/logger"
	"github.com/MKhiriev/recipe-tracker/internal/notify"
	"github.com/MKhiriev/recipe-tracker/internal/store"
	"github.com/MKhiriev/recipe-tracker/internal/utils"
	"github.com/MKhiriev/recipe-tracker/models"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenBytes is the amount of randomness in a reset token; the token
// itself is its hex encoding.
const resetTokenBytes = 32

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; reset tokens are random hex strings
// with a fixed time to live.
type authService struct {
	userRepository       store.UserRepository
	resetTokenRepository store.ResetTokenRepository
	transactor           store.Transactor
	gateway              notify.Gateway

	// hashCost is the bcrypt work factor used for new hashes.
	hashCost int

	// resetTokenTTL controls how long an issued reset token stays redeemable.
	resetTokenTTL time.Duration

	now      func() time.Time
	newToken func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given storages and
// notification gateway, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, gateway notify.Gateway, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       storages.UserRepository,
		resetTokenRepository: storages.ResetTokenRepository,
		transactor:           storages.Transactor,
		gateway:              gateway,
		hashCost:             cfg.PasswordHashCost,
		resetTokenTTL:        cfg.ResetTokenTTL,
		now:                  func() time.Time { return time.Now().UTC() },
		newToken:             func() (string, error) { return utils.RandomHex(resetTokenBytes) },
		logger:               logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the persisted user (with a server-assigned UserID) or
// store.ErrEmailAlreadyExists if the email is taken. The lookup runs before
// the insert; a concurrent registration is still rejected by the unique
// constraint on email.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Info().Str("email", req.Email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Country:      req.Country,
		CreatedAt:    a.now(),
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login checks the password of an existing account and returns the account.
// No session or token is issued.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

func (a *authService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	hash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, req.UserID, hash); err != nil {
		return fmt.Errorf("error changing password: %w", err)
	}
	return nil
}

func (a *authService) DeleteUser(ctx context.Context, userID int64) error {
	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := a.newToken()
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Msg("error generating token")
		return fmt.Errorf("%w: %w", ErrGeneratingToken, err)
	}

	err = a.resetTokenRepository.CreateResetToken(ctx, models.PasswordResetToken{
		Token:     token,
		UserID:    user.UserID,
		ExpiresAt: a.now().Add(a.resetTokenTTL),
	})
	if err != nil {
		return fmt.Errorf("error saving reset token: %w", err)
	}

	// the token stays valid even if delivery fails
	if err = a.gateway.SendPasswordReset(ctx, user.Email, token); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error sending password reset")
	}

	return nil
}

func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	token, err := a.resetTokenRepository.FindResetToken(ctx, req.Token)
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		return fmt.Errorf("error finding reset token: %w", err)
	}

	if !token.IsValidAt(a.now()) {
		log.Info().Int64("user_id", token.UserID).Msg("expired reset token")
		return ErrInvalidOrExpiredToken
	}

	hash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	err = a.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.TxRepositories) error {
		if err := repos.Users.UpdatePassword(ctx, token.UserID, hash); err != nil {
			return err
		}
		return repos.ResetTokens.DeleteResetToken(ctx, token.Token)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrResetTokenNotFound):
		// redeemed concurrently
		return ErrInvalidOrExpiredToken
	default:
		log.Err(err).Int64("user_id", token.UserID).Msg("error resetting password")
		return fmt.Errorf("error resetting password: %w", err)
	}
}

func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.hashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return string(hash), nil
}
