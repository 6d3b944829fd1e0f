package seedrosters

import "time"

// Config holds configuration for the roster seeding run
type Config struct {
	BaseURL      string        // Base URL of the service
	Seekers      int           // Number of seekers to generate
	Providers    int           // Number of providers to generate
	Workers      int           // Number of concurrent workers
	Timeout      time.Duration // HTTP request timeout
	SeekerFile   string        // Output file for generated seekers
	ProviderFile string        // Output file for generated providers
	LogFile      string        // Log file for run output
	Verbose      bool          // Enable verbose logging
	FetchReport  bool          // Fetch the population report after seeding
}

// AckResponse represents the response from a roster submission
type AckResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// Stats holds seeding statistics
type Stats struct {
	SeekersGenerated   int
	ProvidersGenerated int
	RecordsSubmitted   int
	RecordsSuccessful  int
	RecordsRejected    int
	RecordsFailed      int
	ReportSeekers      int
	ReportTotalMatches int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
