package grpc

import (
	"context"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	grpc2 "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"time"
)

func loggingInterceptor(ctx context.Context, req any, info *grpc2.UnaryServerInfo,
	handler grpc2.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	event := log.Debug()
	if code == codes.Internal || code == codes.Unknown {
		event = log.Error().Err(err)
	}
	event.Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("latency", time.Since(start)).
		Msg("rpc")
	return resp, err
}

// rateLimitInterceptor rejects calls with ResourceExhausted once limiter runs dry. A nil
// limiter admits everything.
func rateLimitInterceptor(limiter *rate.Limiter) grpc2.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc2.UnaryServerInfo,
		handler grpc2.UnaryHandler) (any, error) {
		if limiter != nil && !limiter.Allow() {
			log.Warn().Str("method", info.FullMethod).Msg("rate limit exceeded")
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for %s",
				info.FullMethod)
		}
		return handler(ctx, req)
	}
}
