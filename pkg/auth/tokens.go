package auth

import "context"

// TokenGenerator issues an access token for a user.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
