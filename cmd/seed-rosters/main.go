package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/tandem/internal/seedrosters"
)

// Default configuration constants.
const (
	defaultSeekers     = 100
	defaultProviders   = 50
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultSeedTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:9080", "Base URL of the service")
		seekers      = flag.Int("seekers", defaultSeekers, "Number of seekers to generate and submit")
		providers    = flag.Int("providers", defaultProviders, "Number of providers to generate and submit")
		workers      = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seekerFile   = flag.String("seeker-file", "", "Output file for generated seekers")
		providerFile = flag.String("provider-file", "", "Output file for generated providers")
		fetchReport  = flag.Bool("report", true, "Fetch the population report after seeding")
		logFile      = flag.String("log", "", "Log file for run output (default: seed_log_TIMESTAMP.log)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seedrosters.ShowHelp()
		return
	}

	// Setup logging
	if err := seedrosters.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultSeedTimeout)
	defer cancel()

	// Create seeding configuration
	config := &seedrosters.Config{
		BaseURL:      *baseURL,
		Seekers:      *seekers,
		Providers:    *providers,
		Workers:      *workers,
		Timeout:      *timeout,
		SeekerFile:   *seekerFile,
		ProviderFile: *providerFile,
		LogFile:      *logFile,
		Verbose:      *verbose,
		FetchReport:  *fetchReport,
	}

	// Run the seeding flow
	if err := seedrosters.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seeding failed: " + err.Error() + "\n")
		return
	}
}
