package adapters

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"moments-offers/internal/core/httpclient"
	"moments-offers/internal/core/logger"

	"go.uber.org/zap"
)

// HTTPBeaconSink implements the BeaconSink interface. Every fire is an
// HTTP GET dispatched on its own goroutine; failures are logged and
// swallowed, never retried and never surfaced to the caller.
type HTTPBeaconSink struct {
	// client is the HTTP client used for beacon requests.
	client *http.Client
	// timeout bounds each individual fire.
	timeout time.Duration
	// wg tracks in-flight fires so shutdown can drain them.
	wg sync.WaitGroup
}

// NewHTTPBeaconSink creates a new HTTPBeaconSink with a per-fire timeout.
func NewHTTPBeaconSink(timeout time.Duration) *HTTPBeaconSink {
	return &HTTPBeaconSink{
		client:  httpclient.NewClient(timeout),
		timeout: timeout,
	}
}

// Fire dispatches the beacon without blocking the caller. The fire
// outlives the caller's context: a finished carousel transition must
// not cancel a tracking pixel already on its way out.
func (s *HTTPBeaconSink) Fire(ctx context.Context, beaconURL string) {
	if beaconURL == "" {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		fireCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(fireCtx, http.MethodGet, beaconURL, nil)
		if err != nil {
			logger.Get().Warn("Invalid beacon URL",
				zap.String("url", beaconURL),
				zap.Error(err),
			)
			return
		}

		resp, err := s.client.Do(req)
		if err != nil {
			logger.Get().Warn("Beacon fire failed",
				zap.String("url", beaconURL),
				zap.Error(err),
			)
			return
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= http.StatusBadRequest {
			logger.Get().Warn("Beacon returned error status",
				zap.String("url", beaconURL),
				zap.Int("status", resp.StatusCode),
			)
		}
	}()
}

// Wait blocks until every dispatched fire has completed.
func (s *HTTPBeaconSink) Wait() {
	s.wg.Wait()
}
