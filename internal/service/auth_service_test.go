package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
)

func TestLoginAndAuthorizedCall(t *testing.T) {
	env := setupTestServer(t, "2468")
	ctx := context.Background()

	login, err := env.auth.Login(ctx, connect.NewRequest(&LoginRequest{Passcode: "2468"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Msg.Token == "" {
		t.Fatal("expected non-empty token")
	}
	if login.Msg.ExpiresAt.IsZero() {
		t.Error("expected expiry time")
	}

	req := connect.NewRequest(&GetStateRequest{})
	req.Header().Set("Authorization", "Bearer "+login.Msg.Token)
	if _, err := env.billing.GetState(ctx, req); err != nil {
		t.Fatalf("GetState with token failed: %v", err)
	}
}

func TestLoginWrongPasscode(t *testing.T) {
	env := setupTestServer(t, "2468")

	_, err := env.auth.Login(context.Background(), connect.NewRequest(&LoginRequest{Passcode: "0000"}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = env.auth.Login(context.Background(), connect.NewRequest(&LoginRequest{}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestBillingRequiresToken(t *testing.T) {
	env := setupTestServer(t, "2468")
	ctx := context.Background()

	_, err := env.billing.GetState(ctx, connect.NewRequest(&GetStateRequest{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	req := connect.NewRequest(&GetStateRequest{})
	req.Header().Set("Authorization", "Bearer not-a-token")
	_, err = env.billing.GetState(ctx, req)
	assertCode(t, err, connect.CodeUnauthenticated)

	req = connect.NewRequest(&GetStateRequest{})
	req.Header().Set("Authorization", "Basic abc")
	_, err = env.billing.GetState(ctx, req)
	assertCode(t, err, connect.CodeUnauthenticated)
}
