package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/agendly/agendly/services/availability-service/internal/cache"
	"github.com/agendly/agendly/services/availability-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/segmentio/kafka-go"
)

// ScheduleSource provides the organization record needed to translate a
// booking instant into the organization-local calendar date.
type ScheduleSource interface {
	GetOrganization(ctx context.Context, orgID string) (model.Organization, error)
}

// CacheInvalidator drops cached availability for the day a booking event
// touches. Malformed or unresolvable events are logged and skipped, never
// retried; stale cache entries still expire on their TTL.
type CacheInvalidator struct {
	schedules ScheduleSource
	cache     *cache.SlotCache
	logger    *slog.Logger
}

func NewCacheInvalidator(schedules ScheduleSource, slotCache *cache.SlotCache, logger *slog.Logger) *CacheInvalidator {
	return &CacheInvalidator{schedules: schedules, cache: slotCache, logger: logger}
}

func (i *CacheInvalidator) Handle(ctx context.Context, msg kafka.Message) error {
	var payload struct {
		OrganizationID string `json:"organization_id"`
		StartTime      string `json:"start_time"`
	}
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		i.logger.Error("invalid event payload", "err", err, "topic", msg.Topic)
		return nil
	}
	if payload.OrganizationID == "" || payload.StartTime == "" {
		i.logger.Error("missing required event fields", "topic", msg.Topic)
		return nil
	}

	start, err := time.Parse(time.RFC3339, payload.StartTime)
	if err != nil {
		i.logger.Error("invalid event start_time", "err", err, "topic", msg.Topic)
		return nil
	}

	org, err := i.schedules.GetOrganization(ctx, payload.OrganizationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			i.logger.Warn("event for unknown organization", "organization_id", payload.OrganizationID)
			return nil
		}
		return err
	}

	loc, err := time.LoadLocation(org.Timezone)
	if err != nil {
		i.logger.Error("organization has an invalid timezone", "organization_id", org.ID, "timezone", org.Timezone)
		return nil
	}

	// A booking belongs to the day whose local bounds contain its start.
	date := start.In(loc).Format("2006-01-02")
	return i.cache.Invalidate(ctx, payload.OrganizationID, date)
}
