package seedrosters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/tandem/pkg/logger"
)

// HTTP status code constants.
const (
	statusOK      = 200
	statusCreated = 201
	statusBadReq  = 400
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// submitRecords posts records concurrently using a worker pool. Every record
// is marshaled independently so a rejected record never blocks the rest.
func submitRecords(ctx context.Context, config *Config, url string, records []any, stats *Stats) error {
	logger.Get().Info(ctx, "submitting records",
		logger.String("url", url),
		logger.Int("count", len(records)),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)

	var (
		successful int64
		rejected   int64
		failed     int64
		submitted  int64
	)

	recordChan := make(chan any, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range recordChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleRecord(ctx, client, url, record)
					atomic.AddInt64(&submitted, 1)
					if config.Verbose {
						logger.Get().Debug(ctx, "record submitted",
							logger.String("url", url),
							logger.String("result", result))
					}
					switch result {
					case "success":
						atomic.AddInt64(&successful, 1)
					case "rejected":
						atomic.AddInt64(&rejected, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}
				}
			}
		}()
	}

	go func() {
		defer close(recordChan)
		for _, record := range records {
			select {
			case <-ctx.Done():
				return
			case recordChan <- record:
			}
		}
	}()

	wg.Wait()

	stats.RecordsSubmitted += int(atomic.LoadInt64(&submitted))
	stats.RecordsSuccessful += int(atomic.LoadInt64(&successful))
	stats.RecordsRejected += int(atomic.LoadInt64(&rejected))
	stats.RecordsFailed += int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "record submission completed",
		logger.String("url", url),
		logger.Int("successful", int(atomic.LoadInt64(&successful))),
		logger.Int("rejected", int(atomic.LoadInt64(&rejected))),
		logger.Int("failed", int(atomic.LoadInt64(&failed))))

	return nil
}

// submitSingleRecord submits one record and classifies the outcome.
func submitSingleRecord(ctx context.Context, client *HTTPClient, url string, record any) string {
	resp, err := client.Post(ctx, url, record)
	if err != nil {
		return "failed"
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return "failed"
	}

	switch {
	case resp.StatusCode == statusCreated:
		var ack AckResponse
		if err := json.Unmarshal(body, &ack); err == nil && ack.Status == "created" {
			return "success"
		}
		return "success"
	case resp.StatusCode >= statusBadReq && resp.StatusCode < statusBadReq+100:
		return "rejected"
	default:
		return "failed"
	}
}
