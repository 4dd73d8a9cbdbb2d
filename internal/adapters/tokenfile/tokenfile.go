package tokenfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Token is an access token as stored by the API login flow.
type Token struct {
	Value     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// TTL returns how long the token remains valid.
func (t Token) TTL() time.Duration {
	return time.Duration(t.ExpiresIn) * time.Second
}

// Read loads a token file from path.
func Read(path string) (Token, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Token{}, fmt.Errorf("read token file %q: %w", path, err)
	}

	var tok Token
	if err := json.Unmarshal(b, &tok); err != nil {
		return Token{}, fmt.Errorf("read token file %q: parse json: %w", path, err)
	}

	if strings.TrimSpace(tok.Value) == "" {
		return Token{}, fmt.Errorf("read token file %q: %w", path, errors.New("token is empty"))
	}
	if tok.ExpiresIn < 0 {
		return Token{}, fmt.Errorf("read token file %q: expires_in must not be negative, got %d", path, tok.ExpiresIn)
	}

	return tok, nil
}
