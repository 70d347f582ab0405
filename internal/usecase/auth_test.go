package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	pkgAuth "github.com/akarpov/retailhub/internal/pkg/auth"
	testhelpers "github.com/akarpov/retailhub/internal/test"
)

func TestAuthUseCaseRegisterRejectsEmptyCredentials(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "", "pass"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "user", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{IssueFn: func(userID int64) (string, error) {
		return "token-for-1", nil
	}})

	user, token, err := uc.Register(context.Background(), "clerk", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.Login != "clerk" {
		t.Fatalf("unexpected user %+v", user)
	}
	if token != "token-for-1" {
		t.Fatalf("unexpected token %q", token)
	}
	if stored := users.Users["clerk"]; stored == nil || stored.PasswordHash != "hash:secret" {
		t.Fatalf("expected hashed password to be stored, got %+v", stored)
	}
}

func TestAuthUseCaseRegisterDuplicateLogin(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "clerk", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "clerk", "other"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "clerk", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, token, err := uc.Authenticate(context.Background(), "clerk", "secret"); err != nil || token == "" {
		t.Fatalf("expected successful authentication, got %q %v", token, err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "clerk", "wrong"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}

	if _, _, err := uc.Authenticate(context.Background(), "ghost", "secret"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown login, got %v", err)
	}
}

func TestAuthUseCaseAuthenticatePropagatesRepositoryError(t *testing.T) {
	boom := errors.New("boom")
	users := testhelpers.NewUserRepositoryStub()
	users.Err = boom
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Authenticate(context.Background(), "clerk", "secret"); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{ParseFn: func(token string) (int64, error) {
		if token != "valid" {
			return 0, pkgAuth.ErrInvalidToken
		}
		return 42, nil
	}})

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token for empty input, got %v", err)
	}
	if id, err := uc.ParseToken("valid"); err != nil || id != 42 {
		t.Fatalf("expected user 42, got %d %v", id, err)
	}
}
