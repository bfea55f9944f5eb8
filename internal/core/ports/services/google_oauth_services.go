package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthSvcFacade is the Google side of the login flow. Mapping the verified
// email to a staff account is the session service's job.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString returns a random CSRF state for the consent redirect.
	GenerateStateString(ctx context.Context) (string, error)
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken trades the authorization code; the ID token is in the "id_token" extra.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken checks signature and audience and returns the claims.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
