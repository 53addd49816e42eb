//go:build protogen

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/agendly/agendly/libs/grpcx"
	availabilityv1 "github.com/agendly/agendly/protos/gen/availability/v1"
)

// Queries GetDayAvailability over gRPC, for poking a running instance
// without the HTTP surface in front of it.
func main() {
	var (
		addr     = flag.String("addr", getenv("GRPC_ADDR", "localhost:9094"), "availability-service grpc address")
		orgID    = flag.String("organization-id", getenv("ORGANIZATION_ID", ""), "organization to query")
		employee = flag.String("employee-id", "", "optional employee scope")
		date     = flag.String("date", time.Now().Format("2006-01-02"), "organization-local date (YYYY-MM-DD)")
		duration = flag.Int("duration-minutes", 60, "service duration")
		step     = flag.Int("step-minutes", 0, "slot step, 0 for the organization default")
	)
	flag.Parse()

	if *orgID == "" {
		fatal("ORGANIZATION_ID is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := grpcx.Dial(ctx, *addr, grpcx.DialOptions{})
	if err != nil {
		fatal("dial: " + err.Error())
	}
	defer conn.Close()

	client := availabilityv1.NewAvailabilityServiceClient(conn)
	resp, err := client.GetDayAvailability(ctx, &availabilityv1.DayAvailabilityRequest{
		OrganizationId:  *orgID,
		EmployeeId:      *employee,
		Date:            *date,
		DurationMinutes: int32(*duration),
		StepMinutes:     int32(*step),
	})
	if err != nil {
		fatal(err.Error())
	}

	if resp.GetClosed() {
		fmt.Printf("%s closed (%s)\n", resp.GetDate(), resp.GetTimezone())
		return
	}
	for _, slot := range resp.GetSlots() {
		state := "available"
		if !slot.GetAvailable() {
			state = "booked"
		}
		fmt.Printf("%s  %s  %s\n", slot.GetLocalTime(), slot.GetStartUtc().AsTime().Format(time.RFC3339), state)
	}
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
