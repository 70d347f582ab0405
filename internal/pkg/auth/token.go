package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

const defaultTokenTTL = 12 * time.Hour

// TokenStrategy issues and verifies bearer tokens for staff sessions.
type TokenStrategy interface {
	Issue(userID int64) (string, error)
	Parse(token string) (int64, error)
}

// HMACTokens signs "userID.expiry" payloads with HMAC-SHA256.
type HMACTokens struct {
	secret []byte
	ttl    time.Duration
}

// NewHMACTokens builds the strategy with the given secret. A non-positive
// ttl falls back to the default session length.
func NewHMACTokens(secret string, ttl time.Duration) *HMACTokens {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &HMACTokens{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed token carrying the user identifier.
func (s *HMACTokens) Issue(userID int64) (string, error) {
	expires := time.Now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%d.%d", userID, expires)
	return payload + "." + s.sign(payload), nil
}

// Parse validates the token signature and expiry and returns the user ID.
func (s *HMACTokens) Parse(token string) (int64, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0, ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if time.Now().After(time.Unix(expires, 0)) {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (s *HMACTokens) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
