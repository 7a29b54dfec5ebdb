package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// IdentityUsecase resolves a raw bearer token to the account it belongs to.
// It is the precondition gate for every mutating catalog operation and has no
// side effects of its own.
type IdentityUsecase interface {
	// Resolve verifies the token and loads the referenced account.
	// Verification failures (bad signature, malformed payload, expiry) yield
	// ErrUnauthenticated; a valid token whose account no longer exists yields
	// ErrAccountNotFound.
	Resolve(ctx context.Context, rawToken string) (*entity.User, error)
}
