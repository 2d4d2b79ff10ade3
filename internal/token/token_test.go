package token_test

import (
	"testing"
	"time"

	"github.com/stickynotes/sticky-notes-api/internal/domain"
	"github.com/stickynotes/sticky-notes-api/internal/token"
)

const testSecret = "token-test-secret-at-least-32-chars!!"

var testUser = &domain.User{
	ID:           "user-1",
	Email:        "test@example.com",
	Username:     "tester",
	PasswordHash: "$2a$12$fakehashfakehashfakehash",
}

func newService() *token.Service {
	return token.NewService([]byte(testSecret), 15*time.Minute, 7*24*time.Hour)
}

func TestIssuePair_AccessCarriesIdentityClaims(t *testing.T) {
	pair, err := newService().IssuePair(testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := newService().VerifyAccess(pair.Access)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if claims.Subject != testUser.ID {
		t.Errorf("sub = %q, want %q", claims.Subject, testUser.ID)
	}
	if claims.Email != testUser.Email {
		t.Errorf("email = %q, want %q", claims.Email, testUser.Email)
	}
	if claims.Username != testUser.Username {
		t.Errorf("username = %q, want %q", claims.Username, testUser.Username)
	}
}

func TestVerifyAccess_RefreshTokenRejected(t *testing.T) {
	pair, err := newService().IssuePair(testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := newService().VerifyAccess(pair.Refresh); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
}

func TestVerifyAccess_TamperedTokenRejected(t *testing.T) {
	pair, err := newService().IssuePair(testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := pair.Access[:len(pair.Access)-2] + "xx"
	if _, err := newService().VerifyAccess(tampered); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestVerifyAccess_WrongSecretRejected(t *testing.T) {
	pair, err := newService().IssuePair(testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := token.NewService([]byte("a-completely-different-32-char-key!!"), time.Minute, time.Hour)
	if _, err := other.VerifyAccess(pair.Access); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestVerifyAccess_ExpiredReturnsErrTokenExpired(t *testing.T) {
	expired := token.NewService([]byte(testSecret), -time.Minute, time.Hour)
	pair, err := expired.IssuePair(testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = newService().VerifyAccess(pair.Access)
	if err != domain.ErrTokenExpired {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestRefresh_MintsValidAccessToken(t *testing.T) {
	svc := newService()
	pair, err := svc.IssuePair(testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	access, err := svc.Refresh(pair.Refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := svc.VerifyAccess(access)
	if err != nil {
		t.Fatalf("verify refreshed access: %v", err)
	}
	if claims.Subject != testUser.ID {
		t.Errorf("sub = %q, want %q", claims.Subject, testUser.ID)
	}
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	svc := newService()
	pair, err := svc.IssuePair(testUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Refresh(pair.Access); err == nil {
		t.Fatal("access token accepted by Refresh")
	}
}

func TestResetToken_RoundTrip(t *testing.T) {
	svc := newService()
	now := time.Now()

	tok := svc.IssueResetToken(testUser, now)
	if !svc.VerifyResetToken(testUser, tok, now.Add(time.Hour)) {
		t.Fatal("fresh reset token rejected")
	}
}

func TestResetToken_WrongUserRejected(t *testing.T) {
	svc := newService()
	now := time.Now()

	tok := svc.IssueResetToken(testUser, now)
	other := &domain.User{ID: "user-2", PasswordHash: testUser.PasswordHash}
	if svc.VerifyResetToken(other, tok, now) {
		t.Fatal("reset token accepted for a different user")
	}
}

func TestResetToken_ExpiresAfter24Hours(t *testing.T) {
	svc := newService()
	now := time.Now()

	tok := svc.IssueResetToken(testUser, now)
	if svc.VerifyResetToken(testUser, tok, now.Add(25*time.Hour)) {
		t.Fatal("reset token accepted after 24h")
	}
	if !svc.VerifyResetToken(testUser, tok, now.Add(23*time.Hour)) {
		t.Fatal("reset token rejected before 24h")
	}
}

func TestResetToken_InvalidatedByPasswordChange(t *testing.T) {
	svc := newService()
	now := time.Now()

	tok := svc.IssueResetToken(testUser, now)

	changed := *testUser
	changed.PasswordHash = "$2a$12$another-hash-after-reset"
	if svc.VerifyResetToken(&changed, tok, now) {
		t.Fatal("reset token survived a password change")
	}
}

func TestResetToken_MalformedRejected(t *testing.T) {
	svc := newService()
	now := time.Now()

	for _, tok := range []string{"", "noseparator", "zz!!-deadbeef", "-", "0-"} {
		if svc.VerifyResetToken(testUser, tok, now) {
			t.Errorf("malformed token %q accepted", tok)
		}
	}
}
