package grpc

import (
	"fmt"
	"log/slog"
	"net"
	"os"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/finwallet/installment-service/internal/infrastructure/config"
	"github.com/finwallet/installment-service/pkg/auth"
	"github.com/finwallet/installment-service/pkg/tlsutil"
)

// Server wraps the gRPC server with health reporting and graceful shutdown.
type Server struct {
	grpcServer *grpclib.Server
	health     *health.Server
	logger     *slog.Logger
}

// NewServer builds the gRPC server with auth interception, optional TLS and
// health checking. Reflection is enabled only when GRPC_REFLECTION=true.
func NewServer(
	handler InstallmentServiceServer,
	jwtService *auth.JWTService,
	tlsCfg config.TLSConfig,
	logger *slog.Logger,
) (*Server, error) {
	skipAuth := []string{
		"/grpc.health.v1.Health/Check",
		"/grpc.health.v1.Health/Watch",
	}

	opts := []grpclib.ServerOption{
		grpclib.ChainUnaryInterceptor(
			auth.UnaryAuthInterceptor(jwtService, skipAuth),
		),
	}

	if tlsCfg.Enabled {
		creds, err := tlsutil.ServerTLSConfig(tlsCfg.CertFile, tlsCfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load server TLS credentials: %w", err)
		}
		opts = append(opts, grpclib.Creds(creds))
		logger.Info("gRPC TLS enabled", "cert", tlsCfg.CertFile)
	} else {
		logger.Warn("gRPC TLS disabled, serving plaintext")
	}

	grpcServer := grpclib.NewServer(opts...)

	RegisterInstallmentServiceServer(grpcServer, handler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("installment-service", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(grpcServer)
		logger.Info("gRPC reflection enabled")
	}

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		logger:     logger,
	}, nil
}

// Serve listens on addr and blocks until the server stops.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	s.logger.Info("gRPC server listening", "addr", addr)
	return s.grpcServer.Serve(lis)
}

// GracefulStop marks the service unhealthy and drains in-flight RPCs.
func (s *Server) GracefulStop() {
	s.health.SetServingStatus("installment-service", healthpb.HealthCheckResponse_NOT_SERVING)
	s.grpcServer.GracefulStop()
}
