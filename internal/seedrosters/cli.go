package seedrosters

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/tandem/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seed_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the roster seeding tool.
func ShowHelp() {
	os.Stdout.WriteString(`Tandem Roster Seeding Tool
==========================

Generates realistic seeker and provider rosters and submits them to a
running tandem service, then optionally fetches the population report.

Usage:
  go run cmd/seed-rosters/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -seekers int
        Number of seekers to generate and submit (default 100)
  -providers int
        Number of providers to generate and submit (default 50)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -seeker-file string
        Output file for generated seekers (default: none)
  -provider-file string
        Output file for generated providers (default: none)
  -report
        Fetch the population report after seeding (default true)
  -log string
        Log file for run output (default: seed_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Seed with default settings
  go run cmd/seed-rosters/main.go

  # Seed a large population with custom parameters
  go run cmd/seed-rosters/main.go -seekers 1000 -providers 300 -workers 16

  # Seed and keep the generated rosters for replay via TANDEM_SEEKER_ROSTER
  go run cmd/seed-rosters/main.go -seeker-file seekers.json -provider-file providers.json
`)
}
