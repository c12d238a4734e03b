package storefront

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/murkotick/storefront-ledger-service/internal/pkg/logger"
)

// NewServer builds a gRPC server serving srv and the standard health service.
// The health server starts in SERVING for ServiceName.
func NewServer(srv StorefrontServer, log *logger.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append(opts, grpc.ChainUnaryInterceptor(UnaryInterceptors(log)...))
	s := grpc.NewServer(opts...)
	RegisterStorefrontServer(s, srv)

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return s, hs
}
