package seedrosters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/tandem/internal/domain/model"
	"github.com/okian/tandem/internal/domain/types"
	"github.com/okian/tandem/pkg/logger"
)

// File permission constants.
const (
	directoryPermission  = 0750
	rosterFilePermission = 0600
)

// Run executes the complete seeding flow: health check, generation,
// concurrent submission, and an optional population report fetch.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	if config.Verbose {
		_ = logger.SetLevelString("debug")
	}

	logger.Get().Info(ctx, "starting roster seeding",
		logger.String("baseURL", config.BaseURL),
		logger.Int("seekers", config.Seekers),
		logger.Int("providers", config.Providers),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	seekers := generateSeekers(ctx, config, stats)
	providers := generateProviders(ctx, config, stats)

	if err := submitRecords(ctx, config, config.BaseURL+"/seekers", asRecords(seekers), stats); err != nil {
		return fmt.Errorf("seeker submission failed: %w", err)
	}
	if err := submitRecords(ctx, config, config.BaseURL+"/providers", asRecords(providers), stats); err != nil {
		return fmt.Errorf("provider submission failed: %w", err)
	}

	if config.FetchReport {
		if err := fetchReport(ctx, config, stats); err != nil {
			return fmt.Errorf("report fetch failed: %w", err)
		}
	}

	if config.SeekerFile != "" {
		if err := saveToFile(ctx, config.SeekerFile, seekers); err != nil {
			logger.Get().Warn(ctx, "failed to save seekers to file", logger.Error(err))
		}
	}
	if config.ProviderFile != "" {
		if err := saveToFile(ctx, config.ProviderFile, providers); err != nil {
			logger.Get().Warn(ctx, "failed to save providers to file", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "seeding completed successfully")
	return nil
}

// asRecords erases the element type for the shared submission pipeline.
func asRecords[T model.Seeker | model.Provider](items []T) []any {
	records := make([]any, len(items))
	for i, item := range items {
		records[i] = item
	}
	return records
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Any 200 counts as healthy (the endpoint serves Prometheus metrics)
	if resp.StatusCode != statusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// fetchReport retrieves the population report and records its headline stats.
func fetchReport(ctx context.Context, config *Config, stats *Stats) error {
	logger.Get().Info(ctx, "fetching population report")

	client := newHTTPClient(config.Timeout)
	resp, err := client.Get(ctx, config.BaseURL+"/report")
	if err != nil {
		return fmt.Errorf("failed to fetch report: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}
	if resp.StatusCode != statusOK {
		return fmt.Errorf("report request failed with status: %d", resp.StatusCode)
	}

	var report types.PopulationReport
	if err := json.Unmarshal(body, &report); err != nil {
		return fmt.Errorf("failed to decode report: %w", err)
	}

	stats.ReportSeekers = report.Summary.Seekers
	stats.ReportTotalMatches = report.Summary.TotalMatches

	logger.Get().Info(ctx, "population report",
		logger.Int("seekers", report.Summary.Seekers),
		logger.Int("providers", report.Summary.Providers),
		logger.Int("seekersMatched", report.Summary.SeekersMatched),
		logger.Int("totalMatches", report.Summary.TotalMatches),
		logger.Float64("matchRate", report.Summary.MatchRate),
		logger.Int("excellent", report.Summary.ExcellentMatches),
		logger.Int("good", report.Summary.GoodMatches),
		logger.Int("fair", report.Summary.FairMatches),
		logger.Int("poor", report.Summary.PoorMatches),
		logger.Int("pairErrors", len(report.Errors)))
	return nil
}

// saveToFile writes generated records to a JSON file.
func saveToFile(ctx context.Context, filename string, v any) error {
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(filename, data, rosterFilePermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Get().Info(ctx, "records saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final seeding statistics.
func displayFinalStats(stats *Stats) {
	var successRate float64
	if stats.RecordsSubmitted > 0 {
		successRate = float64(stats.RecordsSuccessful) / float64(stats.RecordsSubmitted) * 100
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("seekersGenerated", stats.SeekersGenerated),
		logger.Int("providersGenerated", stats.ProvidersGenerated),
		logger.Int("recordsSubmitted", stats.RecordsSubmitted),
		logger.Int("recordsSuccessful", stats.RecordsSuccessful),
		logger.Int("recordsRejected", stats.RecordsRejected),
		logger.Int("recordsFailed", stats.RecordsFailed),
		logger.Int("reportSeekers", stats.ReportSeekers),
		logger.Int("reportTotalMatches", stats.ReportTotalMatches),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate))
}
