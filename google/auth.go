package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Authorize returns an HTTP client authorised for scope. The credentials file is either a
// service account key or an OAuth client secret; for the latter the token obtained by a
// previous interactive authorisation must be stored alongside the credentials file as
// <name>.tokens.
//
// The access token is obtained before returning so that an unusable key or a rejected grant
// fails here rather than on the first API call.
func Authorize(ctx context.Context, credentials, scope string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	var f struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("invalid credentials file %v (%w)", credentials, err)
	}

	if f.Type == "service_account" {
		config, err := google.JWTConfigFromJSON(b, scope)
		if err != nil {
			return nil, err
		}

		return client(ctx, config.TokenSource(ctx))
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, err
	}

	tokens := tokensFile(credentials)
	token, err := tokenFromFile(tokens)
	if err != nil {
		return nil, fmt.Errorf("no OAuth token for %v (%w)", credentials, err)
	}

	return client(ctx, config.TokenSource(ctx, token))
}

func client(ctx context.Context, source oauth2.TokenSource) (*http.Client, error) {
	if _, err := source.Token(); err != nil {
		return nil, err
	}

	return oauth2.NewClient(ctx, source), nil
}

func tokensFile(credentials string) string {
	dir, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(dir, fmt.Sprintf("%s.tokens", name))
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}
