package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/devconnect-cli/internal/domain"
	"github.com/bnema/devconnect-cli/internal/ports"
)

const (
	tokenPath    = "token/"
	refreshPath  = "token/refresh/"
	registerPath = "users/register/"
)

// AuthAPI covers the public endpoints: token issue, token refresh and registration.
type AuthAPI struct {
	transport *Transport
}

var (
	_ ports.TokenIssuer    = (*AuthAPI)(nil)
	_ ports.TokenRefresher = (*AuthAPI)(nil)
	_ ports.Registrar      = (*AuthAPI)(nil)
)

func NewAuthAPI(transport *Transport) *AuthAPI {
	return &AuthAPI{transport: transport}
}

// IssueToken exchanges a username and password for a credential pair. Any HTTP
// rejection is reported as *domain.AuthError.
func (a *AuthAPI) IssueToken(ctx context.Context, credentials domain.LoginCredentials) (domain.TokenGrant, error) {
	body, err := json.Marshal(map[string]string{
		"username": credentials.Username,
		"password": credentials.Password,
	})
	if err != nil {
		return domain.TokenGrant{}, fmt.Errorf("encode token request: %w", err)
	}

	resp, err := a.send(ctx, Request{Method: http.MethodPost, Path: tokenPath, Body: body, ContentType: "application/json", Public: true})
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			return domain.TokenGrant{}, domain.NewAuthError(apiErr.Detail)
		}
		return domain.TokenGrant{}, err
	}

	payload, err := decode[tokenPayload](tokenPath, resp.Body)
	if err != nil {
		return domain.TokenGrant{}, err
	}

	return domain.TokenGrant{
		Credentials: domain.CredentialPair{Access: payload.Access, Refresh: payload.Refresh},
		User:        payload.User.toDomain(),
	}, nil
}

func (a *AuthAPI) RefreshAccess(ctx context.Context, refresh string) (string, error) {
	body, err := json.Marshal(map[string]string{"refresh": refresh})
	if err != nil {
		return "", fmt.Errorf("encode refresh request: %w", err)
	}

	resp, err := a.send(ctx, Request{Method: http.MethodPost, Path: refreshPath, Body: body, ContentType: "application/json", Public: true})
	if err != nil {
		return "", err
	}

	payload, err := decode[refreshPayload](refreshPath, resp.Body)
	if err != nil {
		return "", err
	}
	return payload.Access, nil
}

func (a *AuthAPI) Register(ctx context.Context, registration domain.Registration) (domain.User, error) {
	body, err := json.Marshal(map[string]string{
		"username":         registration.Username,
		"email":            registration.Email,
		"password":         registration.Password,
		"confirm_password": registration.ConfirmPassword,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("encode registration: %w", err)
	}

	resp, err := a.send(ctx, Request{Method: http.MethodPost, Path: registerPath, Body: body, ContentType: "application/json", Public: true})
	if err != nil {
		return domain.User{}, err
	}

	// The register body varies between deployments; only a well-formed user record is used.
	payload, err := decode[userPayload](registerPath, resp.Body)
	if err != nil {
		return domain.User{Username: registration.Username, Email: registration.Email}, nil
	}
	return payload.toDomain(), nil
}

func (a *AuthAPI) send(ctx context.Context, req Request) (Response, error) {
	resp, err := a.transport.Send(ctx, req, "")
	if err != nil {
		return Response{}, err
	}
	if err := statusError(resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}
