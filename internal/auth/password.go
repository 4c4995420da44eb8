package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// OwnerSubject is the token subject issued to the store owner.
const OwnerSubject = "owner"

var (
	ErrInvalidCredentials = errors.New("invalid passcode")
	ErrWeakPasscode       = errors.New("passcode must be at least 4 characters")
)

// PasscodeAuthenticator checks the owner passcode against a bcrypt hash.
type PasscodeAuthenticator struct {
	hash []byte
}

var _ Authenticator = (*PasscodeAuthenticator)(nil)

// NewPasscodeAuthenticator hashes passcode and returns an authenticator for it.
func NewPasscodeAuthenticator(passcode string) (*PasscodeAuthenticator, error) {
	if len(passcode) < 4 {
		return nil, ErrWeakPasscode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash passcode: %w", err)
	}
	return &PasscodeAuthenticator{hash: hash}, nil
}

// NewPasscodeAuthenticatorFromHash uses an existing bcrypt hash.
func NewPasscodeAuthenticatorFromHash(hash string) (*PasscodeAuthenticator, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid passcode hash: %w", err)
	}
	return &PasscodeAuthenticator{hash: []byte(hash)}, nil
}

// Authenticate compares credential with the stored hash.
func (a *PasscodeAuthenticator) Authenticate(_ context.Context, credential string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return "", ErrInvalidCredentials
	}
	return OwnerSubject, nil
}
