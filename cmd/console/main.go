package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Domenick1991/seatbooking/config"
	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/Domenick1991/seatbooking/internal/service/booking"
)

func main() {
	cfgPath := flag.String("config", "", "run the scenario from this YAML config instead of prompting")
	users := flag.Int("users", 5, "number of concurrent users to prompt for")
	flag.Parse()

	log.SetFlags(0)
	log.SetOutput(os.Stdout)

	ctx := context.Background()
	coordinator := booking.NewCoordinator(nil, nil)

	var err error
	if *cfgPath != "" {
		err = runConfigured(ctx, coordinator, *cfgPath, os.Stdout)
	} else {
		err = runInteractive(ctx, coordinator, os.Stdin, os.Stdout, *users)
	}
	if err != nil {
		log.Fatalf("booking run failed: %v", err)
	}
}

func runConfigured(ctx context.Context, coordinator *booking.Coordinator, path string, out io.Writer) error {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	report, err := coordinator.Run(ctx, cfg.Scenario.Seats, cfg.Scenario.Requests)
	if err != nil {
		return err
	}
	printReport(out, report)
	return nil
}

func runInteractive(ctx context.Context, coordinator *booking.Coordinator, in io.Reader, out io.Writer, users int) error {
	scanner := bufio.NewScanner(in)

	seats, err := promptInt(scanner, out, "Enter the number of seats: ")
	if err != nil {
		return err
	}
	if seats <= 0 {
		return fmt.Errorf("seat count must be positive, got %d: %w", seats, domain.ErrInvalidConfiguration)
	}
	printAvailable(out, allSeats(seats))

	labels := booking.DefaultRequesters(users)
	requests := make([]domain.BookingRequest, 0, users)
	for i, label := range labels {
		n, err := promptInt(scanner, out, fmt.Sprintf("Enter the seat number for user %d: ", i+1))
		if err != nil {
			return err
		}
		requests = append(requests, domain.BookingRequest{SeatNumber: n, Requester: label})
	}

	report, err := coordinator.Run(ctx, seats, requests)
	if err != nil {
		return err
	}
	printReport(out, report)
	return nil
}

func promptInt(scanner *bufio.Scanner, out io.Writer, prompt string) (int, error) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("expected a whole number: %w", err)
	}
	return n, nil
}

func printReport(out io.Writer, report *domain.Report) {
	printAvailable(out, report.Available)
	fmt.Fprintf(out, "Total Number of seats: %d\n", report.TotalSeats)
}

func printAvailable(out io.Writer, available []int) {
	fmt.Fprintln(out, "\nAvailable Seats:")
	parts := make([]string, len(available))
	for i, n := range available {
		parts[i] = strconv.Itoa(n)
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
}

func allSeats(n int) []int {
	seats := make([]int, n)
	for i := range seats {
		seats[i] = i + 1
	}
	return seats
}
