// Package grpc serves the Lists command service for chat gateways next to
// the standard gRPC health service, which tells orchestrators when the
// lists are loaded and the engine accepts commands.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/listbot/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the Lists service; its health is reported alongside the
// overall ("") status.
const ServiceName = "listbot.Lists"

type GRPCServer struct {
	address   string
	logger    logging.Logger
	exec      Executor
	jwtSecret []byte
	health    *health.Server
}

// NewGRPCServer returns a server that reports NOT_SERVING until SetServing
// is called.
func NewGRPCServer(a string, l logging.Logger, exec Executor, secretKey string) *GRPCServer {
	s := &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		exec:      exec,
		jwtSecret: []byte(secretKey),
		health:    health.NewServer(),
	}
	s.SetServing(false)
	return s
}

// SetServing flips both the overall and the lists service status.
func (s *GRPCServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	healthpb.RegisterHealthServer(srv, s.health)
	RegisterListsServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
