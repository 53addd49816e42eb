//go:build protogen

package grpcserver

import (
	"context"
	"errors"

	availabilityv1 "github.com/agendly/agendly/protos/gen/availability/v1"
	"github.com/agendly/agendly/services/availability-service/internal/availability"
	"github.com/agendly/agendly/services/availability-service/internal/snapshot"
	"github.com/jackc/pgx/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type server struct {
	availabilityv1.UnimplementedAvailabilityServiceServer
	loader *snapshot.Loader
}

func Register(grpcServer *grpc.Server, loader *snapshot.Loader) {
	availabilityv1.RegisterAvailabilityServiceServer(grpcServer, &server{loader: loader})
}

func (s *server) GetDayAvailability(ctx context.Context, req *availabilityv1.DayAvailabilityRequest) (*availabilityv1.DayAvailabilityResponse, error) {
	if req.GetOrganizationId() == "" || req.GetDate() == "" {
		return nil, status.Error(codes.InvalidArgument, "organization_id and date are required")
	}
	if req.GetDurationMinutes() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "duration_minutes must be positive")
	}

	snap, err := s.loader.Load(ctx, req.GetOrganizationId(), req.GetEmployeeId(), req.GetDate())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, status.Error(codes.NotFound, "organization or employee not found")
		}
		if availability.IsValidation(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, "availability lookup failed")
	}

	step := int(req.GetStepMinutes())
	if step == 0 {
		step = snap.Organization.SlotStepMinutes
	}
	if step <= 0 {
		step = 30
	}

	result, err := availability.Compute(availability.ComputeInput{
		Date:            req.GetDate(),
		Timezone:        snap.Organization.Timezone,
		Schedule:        snap.Schedule,
		Overrides:       snap.Overrides,
		DurationMinutes: int(req.GetDurationMinutes()),
		StepMinutes:     step,
		Bookings:        snap.Bookings,
	})
	if err != nil {
		if availability.IsValidation(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, "availability computation failed")
	}

	resp := &availabilityv1.DayAvailabilityResponse{
		OrganizationId: req.GetOrganizationId(),
		EmployeeId:     req.GetEmployeeId(),
		Date:           req.GetDate(),
		Timezone:       snap.Organization.Timezone,
		Closed:         result.Closed,
	}
	for _, slot := range result.Slots {
		resp.Slots = append(resp.Slots, &availabilityv1.Slot{
			LocalTime: slot.LocalTime,
			StartUtc:  timestamppb.New(slot.Start),
			EndUtc:    timestamppb.New(slot.End),
			Available: slot.Available,
		})
	}
	return resp, nil
}
