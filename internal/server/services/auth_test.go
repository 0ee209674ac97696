package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"github.com/dmitrijs2005/taskvault/internal/cryptox"
	"github.com/dmitrijs2005/taskvault/internal/server/auth"
	"github.com/dmitrijs2005/taskvault/internal/server/config"
	"github.com/dmitrijs2005/taskvault/internal/server/models"
)

// --- helpers ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	lastCreated *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "u-1"
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func newAuthService(t *testing.T, repo *fakeUsersRepo) *AuthService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
	return NewAuthService(repo, cfg)
}

// --- tests ---

func TestSignUp_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newAuthService(t, repo)

	token, err := s.SignUp(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if userID != "u-1" {
		t.Fatalf("token asserts wrong user: %q", userID)
	}
}

func TestSignUp_StoresDigestNotPlaintext(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newAuthService(t, repo)

	if _, err := s.SignUp(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if repo.lastCreated == nil {
		t.Fatalf("Create was not called")
	}
	if repo.lastCreated.PasswordDigest == "pw1" {
		t.Fatalf("plaintext password stored")
	}
	if !cryptox.VerifyPassword("pw1", repo.lastCreated.PasswordDigest) {
		t.Fatalf("stored digest does not verify the password")
	}
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrorUsernameTaken}
	s := newAuthService(t, repo)

	_, err := s.SignUp(context.Background(), "alice", "pw2")
	if !errors.Is(err, common.ErrorUsernameTaken) {
		t.Fatalf("want common.ErrorUsernameTaken, got %v", err)
	}
}

func TestSignUp_StorageErrorYieldsNoToken(t *testing.T) {
	repo := &fakeUsersRepo{createErr: errors.New("db down")}
	s := newAuthService(t, repo)

	token, err := s.SignUp(context.Background(), "alice", "pw")
	if err == nil {
		t.Fatalf("expected error when storage fails")
	}
	if token != "" {
		t.Fatalf("token issued for a user that was never stored")
	}
}

func TestSignIn_Success(t *testing.T) {
	digest := cryptox.HashPassword("pw1")
	repo := &fakeUsersRepo{getOut: &models.User{ID: "u-1", Username: "alice", PasswordDigest: digest}}
	s := newAuthService(t, repo)

	token, err := s.SignIn(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	userID, err := auth.GetUserIDFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if userID != "u-1" {
		t.Fatalf("token asserts wrong user: %q", userID)
	}
}

func TestSignIn_UnknownUserAndWrongPasswordCollapse(t *testing.T) {
	// Unknown username.
	s := newAuthService(t, &fakeUsersRepo{getErr: common.ErrorNotFound})
	_, errGhost := s.SignIn(context.Background(), "ghost", "whatever")

	// Known username, wrong password.
	digest := cryptox.HashPassword("right")
	s2 := newAuthService(t, &fakeUsersRepo{getOut: &models.User{ID: "u-1", Username: "alice", PasswordDigest: digest}})
	_, errWrong := s2.SignIn(context.Background(), "alice", "wrong")

	if !errors.Is(errGhost, common.ErrorInvalidCredentials) {
		t.Fatalf("unknown user: want common.ErrorInvalidCredentials, got %v", errGhost)
	}
	if !errors.Is(errWrong, common.ErrorInvalidCredentials) {
		t.Fatalf("wrong password: want common.ErrorInvalidCredentials, got %v", errWrong)
	}
	if errGhost.Error() != errWrong.Error() {
		t.Fatalf("failure paths are distinguishable: %q vs %q", errGhost, errWrong)
	}
}

func TestSignIn_StorageErrorPropagates(t *testing.T) {
	s := newAuthService(t, &fakeUsersRepo{getErr: errors.New("db down")})

	_, err := s.SignIn(context.Background(), "alice", "pw")
	if err == nil || errors.Is(err, common.ErrorInvalidCredentials) {
		t.Fatalf("storage error must not collapse into InvalidCredentials, got %v", err)
	}
}

func TestSignIn_TokensDifferAcrossLogins(t *testing.T) {
	digest := cryptox.HashPassword("pw1")
	repo := &fakeUsersRepo{getOut: &models.User{ID: "u-1", Username: "alice", PasswordDigest: digest}}
	s := newAuthService(t, repo)

	a, err := s.SignIn(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	time.Sleep(1100 * time.Millisecond) // IssuedAt has second granularity
	b, err := s.SignIn(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if a == b {
		t.Fatalf("two logins produced the same token string")
	}
}
