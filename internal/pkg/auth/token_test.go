package auth

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNewHMACTokens_DefaultTTL(t *testing.T) {
	strategy := NewHMACTokens("secret", 0)
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != defaultTokenTTL {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestNewHMACTokens_CustomTTL(t *testing.T) {
	ttl := 2 * time.Hour
	strategy := NewHMACTokens("secret", ttl)
	if strategy.ttl != ttl {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestHMACTokens_IssueAndParse(t *testing.T) {
	strategy := NewHMACTokens("secret", time.Minute)
	token, err := strategy.Issue(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	userID, err := strategy.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("unexpected user id: %d", userID)
	}
}

func TestHMACTokens_ParseInvalidParts(t *testing.T) {
	strategy := NewHMACTokens("secret", 0)
	if _, err := strategy.Parse("only.two"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACTokens_ParseInvalidSignature(t *testing.T) {
	strategy := NewHMACTokens("secret", time.Minute)
	token, err := strategy.Issue(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	tampered := token[:len(token)-1] + "x"
	if _, err := strategy.Parse(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACTokens_ParseForeignSecret(t *testing.T) {
	strategy := NewHMACTokens("secret", time.Minute)
	token, err := strategy.Issue(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	other := NewHMACTokens("another-secret", time.Minute)
	if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACTokens_ParseInvalidUserID(t *testing.T) {
	strategy := NewHMACTokens("secret", 0)
	payload := fmt.Sprintf("abc.%d", time.Now().Add(time.Minute).Unix())
	token := payload + "." + strategy.sign(payload)
	if _, err := strategy.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACTokens_ParseInvalidExpiry(t *testing.T) {
	strategy := NewHMACTokens("secret", 0)
	payload := "10.not-a-number"
	token := payload + "." + strategy.sign(payload)
	if _, err := strategy.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACTokens_ParseExpired(t *testing.T) {
	strategy := NewHMACTokens("secret", 0)
	payload := fmt.Sprintf("10.%d", time.Now().Add(-time.Minute).Unix())
	token := payload + "." + strategy.sign(payload)
	if _, err := strategy.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
