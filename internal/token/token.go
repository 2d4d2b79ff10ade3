// Package token issues and verifies the credentials used by the API:
// signed access/refresh JWT pairs and stateless password-reset tokens.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stickynotes/sticky-notes-api/internal/domain"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"

	resetTokenTTL = 24 * time.Hour
)

// Claims carries the user id in the standard subject claim plus denormalized
// email/username so clients can render identity without another lookup.
type Claims struct {
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type Pair struct {
	Access  string
	Refresh string
}

type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(secret []byte, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair mints a short-lived access token and a long-lived refresh token
// for the user. Only the access token carries the display claims.
func (s *Service) IssuePair(user *domain.User) (*Pair, error) {
	now := time.Now()

	access, err := s.sign(Claims{
		Email:     user.Email,
		Username:  user.Username,
		TokenType: typeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := s.sign(Claims{
		TokenType: typeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &Pair{Access: access, Refresh: refresh}, nil
}

// VerifyAccess checks signature, expiry, and token type. Any malformed or
// tampered input fails closed with ErrTokenInvalid.
func (s *Service) VerifyAccess(raw string) (*Claims, error) {
	return s.verify(raw, typeAccess)
}

// Refresh verifies a refresh token and mints a fresh access token for its
// subject. The refresh token itself is not rotated.
func (s *Service) Refresh(rawRefresh string) (string, error) {
	claims, err := s.verify(rawRefresh, typeRefresh)
	if err != nil {
		return "", err
	}

	now := time.Now()
	access, err := s.sign(Claims{
		TokenType: typeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}

// IssueResetToken derives a single-use password-reset token from the user's
// current password hash. No token table: changing the password changes the
// MAC input, which invalidates every outstanding token for the user.
// Format is "<base36 unix timestamp>-<hex hmac>", safe for URL path segments.
func (s *Service) IssueResetToken(user *domain.User, now time.Time) string {
	ts := strconv.FormatInt(now.Unix(), 36)
	return ts + "-" + s.resetMAC(user, ts)
}

// VerifyResetToken recomputes the MAC from the user's current state and
// compares in constant time. Tokens older than 24h are rejected.
func (s *Service) VerifyResetToken(user *domain.User, token string, now time.Time) bool {
	ts, mac, ok := strings.Cut(token, "-")
	if !ok {
		return false
	}

	issuedAt, err := strconv.ParseInt(ts, 36, 64)
	if err != nil {
		return false
	}
	age := now.Sub(time.Unix(issuedAt, 0))
	if age < 0 || age > resetTokenTTL {
		return false
	}

	return hmac.Equal([]byte(mac), []byte(s.resetMAC(user, ts)))
}

func (s *Service) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) verify(raw, wantType string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid || claims.TokenType != wantType || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

func (s *Service) resetMAC(user *domain.User, ts string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(user.ID))
	mac.Write([]byte{0})
	mac.Write([]byte(user.PasswordHash))
	mac.Write([]byte{0})
	mac.Write([]byte(ts))
	return hex.EncodeToString(mac.Sum(nil))
}
