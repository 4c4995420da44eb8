package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/photobill/internal/auth"
)

// AuthService exchanges the owner passcode for a session token.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

var _ AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login authenticates the owner and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	if req.Msg.Passcode == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	subject, err := s.authenticator.Authenticate(ctx, req.Msg.Passcode)
	if err != nil {
		s.logger.Warn("Login failed", "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, expiresAt, err := s.jwtManager.Generate(subject)
	if err != nil {
		s.logger.Error("Failed to generate token", "subject", subject, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Owner logged in", "subject", subject)
	return connect.NewResponse(&LoginResponse{Token: token, ExpiresAt: expiresAt}), nil
}
