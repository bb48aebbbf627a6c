package septa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mini-septa/poller/internal/septa/decode"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultBaseURL = "https://www3.septa.org/api"

	trainViewPath    = "/TrainView/index.php"
	arrivalsPath     = "/Arrivals/index.php"
	nextToArrivePath = "/NextToArrive/index.php"
	railSchedulePath = "/RRSchedules/index.php"
)

var (
	fetchCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "septa_fetch_count",
		Help: "Number of responses received from a SEPTA API endpoint",
	}, []string{"endpoint"})
	transportErrorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "septa_transport_error_count",
		Help: "Number of SEPTA API requests that failed before a body was read",
	}, []string{"endpoint"})
	apiErrorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "septa_api_error_count",
		Help: "Number of SEPTA API responses carrying an error envelope",
	}, []string{"endpoint"})
	decodeErrorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "septa_decode_error_count",
		Help: "Number of SEPTA API responses that could not be decoded, by failure kind",
	}, []string{"endpoint", "kind"})
)

func init() {
	prometheus.MustRegister(fetchCount, transportErrorCount, apiErrorCount, decodeErrorCount)
}

// Client issues requests against the SEPTA API. It performs no retries and
// caches nothing.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for baseURL. An empty baseURL selects the
// public API.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// TrainView returns the live position of every train.
func (c *Client) TrainView(ctx context.Context) ([]Train, error) {
	return fetch(ctx, c, trainViewPath, nil, DecodeTrains)
}

// Arrivals returns upcoming departures from a station, split by direction.
func (c *Client) Arrivals(ctx context.Context, req ArrivalsRequest) (ArrivalsResult, error) {
	return fetch(ctx, c, arrivalsPath, req.Params(), DecodeArrivalsResponse)
}

// NextToArrive returns the next connections between two stations.
func (c *Client) NextToArrive(ctx context.Context, req NextToArriveRequest) ([]NextToArrive, error) {
	return fetch(ctx, c, nextToArrivePath, req.Params(), DecodeNextToArrive)
}

// RailSchedule returns the stop-by-stop schedule of a train.
func (c *Client) RailSchedule(ctx context.Context, req RailScheduleRequest) ([]ScheduleStop, error) {
	return fetch(ctx, c, railSchedulePath, req.Params(), DecodeRailSchedule)
}

func fetch[T any](ctx context.Context, c *Client, path string, params url.Values, decodeBody func([]byte) (Response[T], error)) (T, error) {
	var zero T

	body, err := c.get(ctx, path, params)
	if err != nil {
		transportErrorCount.WithLabelValues(path).Inc()
		return zero, err
	}
	fetchCount.WithLabelValues(path).Inc()

	resp, err := decodeBody(body)
	if err != nil {
		decodeErrorCount.WithLabelValues(path, errorKind(err)).Inc()
		return zero, fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	value, err := resp.Result()
	if err != nil {
		apiErrorCount.WithLabelValues(path).Inc()
		return zero, err
	}
	return value, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: target, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: target, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return body, nil
}

// errorKind buckets decode failures for the decode error counter.
func errorKind(err error) string {
	var de *decode.Error
	var ee *EnvelopeError
	switch {
	case errors.As(err, &ee):
		return "envelope"
	case errors.As(err, &de):
		return "field"
	default:
		return "syntax"
	}
}
