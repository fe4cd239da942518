package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/zoramarket/zora-backend/pkg/config"
	pkgerrors "github.com/zoramarket/zora-backend/pkg/errors"
)

// SessionData is the identity payload the external auth provider returns
// for a valid one-time session id.
type SessionData struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

// Provider resolves a one-time session id into the identity it belongs to.
type Provider interface {
	FetchSessionData(ctx context.Context, sessionID string) (*SessionData, error)
}

type httpProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider builds the production provider client from config.
func NewHTTPProvider(cfg config.AuthConfig) Provider {
	return &httpProvider{
		baseURL: strings.TrimRight(cfg.ProviderBaseURL, "/"),
		client:  &http.Client{Timeout: cfg.ProviderTimeout},
	}
}

func (p *httpProvider) FetchSessionData(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/session-data", nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build provider request")
	}
	req.Header.Set("X-Session-ID", sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call auth provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session id")
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode auth provider response")
	}
	if data.Email == "" || data.SessionToken == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "auth provider returned incomplete session data")
	}
	return &data, nil
}
