package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenProvider is an interface for providing OAuth tokens for the Calendar
// API. The abstraction keeps the calendar client testable and leaves room
// for token sources other than the local file.
type TokenProvider interface {
	// GetToken retrieves the OAuth token.
	GetToken(ctx context.Context) (*oauth2.Token, error)

	// HasToken checks whether a token is available.
	HasToken() bool
}

// FileTokenProvider provides tokens from the on-disk token file.
type FileTokenProvider struct{}

// NewFileTokenProvider creates a new file-based token provider.
func NewFileTokenProvider() *FileTokenProvider {
	return &FileTokenProvider{}
}

// GetToken retrieves the token from disk.
func (p *FileTokenProvider) GetToken(ctx context.Context) (*oauth2.Token, error) {
	ts, err := GetTokenSource(ctx)
	if err != nil {
		return nil, err
	}

	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get token from file: %w", err)
	}
	return token, nil
}

// HasToken checks if a token file exists.
func (p *FileTokenProvider) HasToken() bool {
	return HasToken()
}
