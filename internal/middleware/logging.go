package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/photobill/internal/metrics"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// and counts it by procedure and result code.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			subject := GetSubject(ctx)

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			code := "ok"
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					code = connectErr.Code().String()
					logger.Warn("RPC error",
						"procedure", procedure,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"subject", subject,
						"duration_ms", duration,
					)
				} else {
					code = connect.CodeUnknown.String()
					logger.Error("RPC error",
						"procedure", procedure,
						"error", err,
						"subject", subject,
						"duration_ms", duration,
					)
				}
			} else {
				logger.Info("RPC ok",
					"procedure", procedure,
					"subject", subject,
					"duration_ms", duration,
				)
			}
			metrics.RPCRequests.WithLabelValues(procedure, code).Inc()

			return resp, err
		}
	}
}
