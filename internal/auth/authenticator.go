package auth

import "context"

// Authenticator verifies the credential presented by the store owner.
// This abstraction allows swapping the passcode check for another method
// without changing the service layer code.
type Authenticator interface {
	// Authenticate returns the session subject if credential is valid.
	Authenticate(ctx context.Context, credential string) (string, error)
}
