package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stickynotes/sticky-notes-api/internal/domain"
	"github.com/stickynotes/sticky-notes-api/internal/email"
	"github.com/stickynotes/sticky-notes-api/internal/metrics"
	"github.com/stickynotes/sticky-notes-api/internal/repository"
	"github.com/stickynotes/sticky-notes-api/internal/token"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthUsecase struct {
	users         repository.UserRepository
	email         email.Sender
	tokens        *token.Service
	resetLinkBase string
}

func NewAuthUsecase(users repository.UserRepository, emailSender email.Sender, tokens *token.Service, resetLinkBase string) *AuthUsecase {
	return &AuthUsecase{
		users:         users,
		email:         emailSender,
		tokens:        tokens,
		resetLinkBase: resetLinkBase,
	}
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Register creates a user with a bcrypt hash of the password. The plaintext
// is never stored or logged.
func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := u.users.Create(ctx, &domain.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	return created, nil
}

// Login returns a token pair on success. Unknown email and wrong password
// collapse into the same ErrInvalidCredentials so responses cannot be used
// to enumerate accounts.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (*token.Pair, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := u.tokens.IssuePair(user)
	if err != nil {
		return nil, fmt.Errorf("issue token pair: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (u *AuthUsecase) Refresh(_ context.Context, refreshToken string) (string, error) {
	return u.tokens.Refresh(refreshToken)
}

// RequestPasswordReset emails the user a reset link valid for 24 hours.
// A failed send surfaces as ErrEmailDelivery, never silently.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	resetToken := u.tokens.IssueResetToken(user, time.Now())
	link := fmt.Sprintf("%s/password-reset-confirm/%s/%s", u.resetLinkBase, user.ID, resetToken)

	subject := "Password Reset Request"
	body := fmt.Sprintf(
		`<p>You've requested to reset your password. Please use the following link to reset your password:</p>
<p><a href="%s">%s</a></p>
<p>If you didn't request this, you can safely ignore this email.</p>
<p>This link will expire in 24 hours.</p>`,
		link, link,
	)

	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		metrics.ResetEmailsTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("%w: %w", domain.ErrEmailDelivery, err)
	}

	metrics.ResetEmailsTotal.WithLabelValues("success").Inc()
	return nil
}

// ConfirmPasswordReset verifies the state-derived token and persists a new
// password hash, which invalidates the token and any others outstanding.
func (u *AuthUsecase) ConfirmPasswordReset(ctx context.Context, userID, resetToken, newPassword string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.ErrUserNotFound
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if !u.tokens.VerifyResetToken(user, resetToken, time.Now()) {
		return domain.ErrTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := u.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
