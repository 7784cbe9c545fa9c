package usecase

import (
	"context"

	"github.com/google/uuid"
)

// BeginOAuthOutput returns where to send the user to start a provider flow.
type BeginOAuthOutput struct {
	RedirectURL string
}

// CompleteOAuthInput defines the callback data of a provider flow.
// UserID is set when an authenticated user finishes the flow; the provider
// identity is then linked to that account instead of opening a session.
type CompleteOAuthInput struct {
	Provider      string
	Code          string
	State         string
	ProviderError string
	UserID        uuid.UUID
	UserAgent     string
	IP            string
}

// CompleteOAuthOutput is the result of a finished provider flow: a token pair
// for a sign-in, or Linked for a link operation.
type CompleteOAuthOutput struct {
	Linked       bool
	AccessToken  string
	RefreshToken string
}

// OAuthUsecase defines the interface for external provider sign-in and account linking.
type OAuthUsecase interface {
	// Begin starts the authorization code flow and returns the provider redirect URL.
	Begin(ctx context.Context, provider string) (*BeginOAuthOutput, error)

	// Complete finishes the flow: exchanges the code, then either links the
	// provider identity to the calling account or resolves-or-creates the
	// account behind it and opens a session.
	Complete(ctx context.Context, input *CompleteOAuthInput) (*CompleteOAuthOutput, error)

	// Unlink removes a user's link to a provider account.
	Unlink(ctx context.Context, userID uuid.UUID, provider string) error
}
