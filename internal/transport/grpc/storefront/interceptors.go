package storefront

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/logger"
)

// RequestIDHeader is read from incoming metadata and echoed back.
const RequestIDHeader = "x-request-id"

// UnaryInterceptors returns the server interceptor chain: request id, access
// log, then panic recovery closest to the handler.
func UnaryInterceptors(log *logger.Logger) []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		requestIDInterceptor(log),
		accessLogInterceptor(log),
		recoveryInterceptor(log),
	}
}

func requestIDInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(RequestIDHeader); len(v) > 0 {
				requestID = v[0]
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))
		return handler(log.WithRequestID(ctx, requestID), req)
	}
}

func accessLogInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		zl := log.Zerolog(ctx)
		event := zl.Info()
		switch code {
		case codes.OK, codes.NotFound, codes.InvalidArgument, codes.FailedPrecondition:
		default:
			event = zl.Error().Err(err)
		}
		event.
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("latency", time.Since(start)).
			Msg("grpc request")
		return resp, err
	}
}

func recoveryInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(ctx, "panic in grpc handler", fmt.Errorf("%s: %v", info.FullMethod, r))
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
