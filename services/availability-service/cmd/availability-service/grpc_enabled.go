//go:build protogen

package main

import (
	"context"
	"log/slog"
	"net"

	"github.com/agendly/agendly/libs/config"
	"github.com/agendly/agendly/libs/grpcx"
	"github.com/agendly/agendly/services/availability-service/internal/grpcserver"
	"github.com/agendly/agendly/services/availability-service/internal/snapshot"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

func startGrpcServer(ctx context.Context, logger *slog.Logger, loader *snapshot.Loader) error {
	port, err := config.Port("GRPC_PORT", "9094")
	if err != nil {
		return err
	}
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcx.UnaryServerRequestIDInterceptor()),
	)
	grpcserver.Register(srv, loader)

	go func() {
		logger.Info("grpc server starting", "addr", lis.Addr().String())
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc server error", "err", err)
		}
	}()

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	return nil
}
