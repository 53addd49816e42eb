//go:build !protogen

package main

import (
	"context"
	"log/slog"

	"github.com/agendly/agendly/services/availability-service/internal/snapshot"
)

func startGrpcServer(_ context.Context, _ *slog.Logger, _ *snapshot.Loader) error {
	return nil
}
