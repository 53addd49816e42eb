package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/agendly/agendly/libs/kafkax"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publishes a synthetic booking lifecycle event so cache invalidation can be
// exercised without running the whole booking flow.
func main() {
	var (
		brokers   = flag.String("brokers", getenv("KAFKA_BROKERS", "localhost:9092"), "comma-separated kafka brokers")
		topic     = flag.String("topic", getenv("KAFKA_TOPIC", "booking.lifecycle.v1"), "topic to publish to")
		evtType   = flag.String("type", "booking.created", "event type header")
		orgID     = flag.String("organization-id", getenv("ORGANIZATION_ID", ""), "organization the booking belongs to")
		employee  = flag.String("employee-id", "", "assigned employee, empty for unassigned")
		startTime = flag.String("start-time", "", "booking start as RFC3339, defaults to one hour from now")
	)
	flag.Parse()

	if strings.TrimSpace(*orgID) == "" {
		fatal("ORGANIZATION_ID is required")
	}

	start := time.Now().UTC().Add(time.Hour).Truncate(time.Minute)
	if strings.TrimSpace(*startTime) != "" {
		parsed, err := time.Parse(time.RFC3339, *startTime)
		if err != nil {
			fatal("invalid start-time: " + err.Error())
		}
		start = parsed.UTC()
	}

	eventID := uuid.NewString()
	payload, err := json.Marshal(map[string]any{
		"booking_id":      uuid.NewString(),
		"organization_id": *orgID,
		"employee_id":     *employee,
		"start_time":      start.Format(time.RFC3339),
		"end_time":        start.Add(time.Hour).Format(time.RFC3339),
		"status":          "booked",
	})
	if err != nil {
		fatal(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	writer := &kafka.Writer{
		Addr:     kafka.TCP(kafkax.SplitBrokers(*brokers)...),
		Topic:    *topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	headers := []kafka.Header{
		{Key: "event_id", Value: []byte(eventID)},
		{Key: "event_type", Value: []byte(*evtType)},
	}
	headers = kafkax.InjectTraceHeaders(ctx, headers)

	if err := writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(*orgID),
		Value:   payload,
		Headers: headers,
	}); err != nil {
		fatal(err.Error())
	}

	fmt.Printf("published event_id=%s topic=%s start=%s\n", eventID, *topic, start.Format(time.RFC3339))
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
