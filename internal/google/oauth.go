package google

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const oobRedirect = "urn:ietf:wg:oauth:2.0:oob"

// HasToken checks if a stored OAuth token exists.
func HasToken() bool {
	_, err := os.ReadFile(tokenFile())
	return err == nil
}

// GetAuthURL returns the OAuth URL for user authorization.
func GetAuthURL() string {
	return GetOAuthConfig().AuthCodeURL("state")
}

// SaveToken exchanges an authorization code for tokens and stores them.
func SaveToken(ctx context.Context, authCode string) error {
	conf := GetOAuthConfig()

	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	if err := os.MkdirAll(cacheDir(), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(tokenFile(), []byte(tokenData), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// GetOAuthConfig returns the OAuth2 configuration for the Calendar API.
// Client credentials come from the environment; the calendar scope is the
// only one this service needs.
func GetOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Endpoint:     google.Endpoint,
		RedirectURL:  oobRedirect,
		Scopes:       CalendarScopes,
	}
}

// GetTokenSource returns an OAuth2 token source backed by the stored token.
func GetTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	conf := GetOAuthConfig()

	slurp, err := os.ReadFile(tokenFile())
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found")
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format")
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("cached token is invalid: %w", err)
	}
	return ts, nil
}

func cacheDir() string {
	return filepath.Join(userCacheDir(), "calsched")
}

func tokenFile() string {
	return filepath.Join(cacheDir(), "google.token")
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
