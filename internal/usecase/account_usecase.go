// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	FullName string `json:"full_name" form:"full_name"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginInput defines the data required for an account to log in. Login
// arrives form-encoded, matching the OAuth2 password flow of the original API.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's public projection.
type RegisterOutput struct {
	User *entity.PublicUser
}

// LoginOutput returns the issued bearer token alongside the public projection.
type LoginOutput struct {
	AccessToken string
	User        *entity.PublicUser
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account. A username or email collision fails
	// with ErrDuplicateAccount and persists nothing.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a bearer token. Unknown usernames
	// and wrong passwords are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
