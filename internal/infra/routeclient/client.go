// Package routeclient is the HTTP side of the route optimization service client.
package routeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/errors"
)

const (
	defaultTimeout = 20 * time.Second
	maxAttempts    = 4
	initialBackoff = 200 * time.Millisecond
	maxErrorBody   = 4 << 10
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// Client implements service.RouteAPI over HTTP/JSON.
// It holds no delivery-session state and is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	session *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a client for the service at baseURL. Every call is bounded by timeout.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse route service base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("route service base url %q must be absolute", baseURL)
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: u,
		session: &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logger,
	}, nil
}

// OptimizeRoute asks the optimizer to order the given addresses.
func (c *Client) OptimizeRoute(ctx context.Context, addresses []string, startLocation *string) (*entity.OptimizedRoute, error) {
	if len(addresses) < 2 {
		return nil, domainerrors.ErrValidation.WithDetails("at least 2 addresses are required")
	}
	for i, addr := range addresses {
		if strings.TrimSpace(addr) == "" {
			return nil, domainerrors.ErrValidation.WithDetails(fmt.Sprintf("address %d is empty", i))
		}
	}

	var wire wireOptimizedRoute
	err := c.call(ctx, http.MethodPost, "/optimize-route", optimizeRouteRequest{
		Addresses:     addresses,
		StartLocation: startLocation,
	}, &wire, false)
	if err != nil {
		return nil, err
	}

	return wire.toEntity()
}

// GetRoute fetches a route by ID. Transient failures are retried.
func (c *Client) GetRoute(ctx context.Context, routeID string) (*entity.OptimizedRoute, error) {
	if strings.TrimSpace(routeID) == "" {
		return nil, domainerrors.ErrValidation.WithDetails("route id is required")
	}

	var wire wireOptimizedRoute
	if err := c.call(ctx, http.MethodGet, "/route/"+url.PathEscape(routeID), nil, &wire, true); err != nil {
		return nil, err
	}

	return wire.toEntity()
}

// StartDelivery opens a delivery for the route.
func (c *Client) StartDelivery(ctx context.Context, routeID string) (*entity.DeliveryStart, error) {
	if strings.TrimSpace(routeID) == "" {
		return nil, domainerrors.ErrValidation.WithDetails("route id is required")
	}

	var resp startDeliveryResponse
	if err := c.call(ctx, http.MethodPost, "/route/"+url.PathEscape(routeID)+"/start", nil, &resp, false); err != nil {
		return nil, err
	}
	if resp.DeliveryID == "" {
		return nil, invalidPayload("delivery_id is empty")
	}

	return &entity.DeliveryStart{DeliveryID: resp.DeliveryID, Status: resp.Status}, nil
}

// UpdateLocation pushes the courier position.
func (c *Client) UpdateLocation(ctx context.Context, deliveryID string, location entity.Coordinate) error {
	return c.call(ctx, http.MethodPost, "/track/update", updateLocationRequest{
		DeliveryID: deliveryID,
		Location:   wireLocation{Latitude: location.Latitude, Longitude: location.Longitude},
	}, nil, false)
}

// CompleteStop marks a stop as delivered. A 409 means the service already
// recorded it and is treated as success.
func (c *Client) CompleteStop(ctx context.Context, deliveryID string, stopIndex int) error {
	err := c.call(ctx, http.MethodPost, "/delivery/"+url.PathEscape(deliveryID)+"/complete-stop",
		completeStopRequest{StopIndex: stopIndex}, nil, false)

	return c.ignoreConflict(err, "complete stop", deliveryID)
}

// CompleteDelivery marks the delivery as done. A 409 is treated as success.
func (c *Client) CompleteDelivery(ctx context.Context, deliveryID string) error {
	err := c.call(ctx, http.MethodPost, "/delivery/"+url.PathEscape(deliveryID)+"/complete", nil, nil, false)

	return c.ignoreConflict(err, "complete delivery", deliveryID)
}

func (c *Client) ignoreConflict(err error, op, deliveryID string) error {
	var he *httpStatusError
	if errors.As(err, &he) && he.Code == http.StatusConflict {
		c.logger.Debug("[RouteClient] Already completed, ignoring conflict",
			slog.String("op", op),
			slog.String("delivery_id", deliveryID),
		)

		return nil
	}

	return err
}

// call performs one logical request and maps failures onto the domain taxonomy.
func (c *Client) call(ctx context.Context, method, path string, in, out any, retry bool) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return errors.Wrap(err, "encode request")
		}
	}

	makeReq := func() (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		return c.newRequest(ctx, method, path, body)
	}

	var (
		resp *http.Response
		err  error
	)
	if retry {
		resp, err = c.doWithRetry(ctx, makeReq)
	} else {
		var req *http.Request
		if req, err = makeReq(); err == nil {
			resp, err = c.do(req)
		}
	}
	if err != nil {
		return c.mapError(method, path, err)
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.ErrServiceUnavailable.WithDetails("decode response: " + err.Error())
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()

		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	return resp, nil
}

// doWithRetry retries transient failures (network errors, 429 and 5xx)
// using exponential backoff while respecting context cancellation.
func (c *Client) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	backoff := initialBackoff

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, err
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isTransient(err) || attempt == maxAttempts {
			return nil, lastErr
		}

		c.logger.Debug("[RouteClient] Retrying request",
			slog.String("url", req.URL.String()),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func isTransient(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}

		return false
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

func (c *Client) mapError(method, path string, err error) error {
	var he *httpStatusError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("%s %s", method, path))
		}

		return errors.Wrapf(&statusError{httpStatusError: he, base: domainerrors.ErrServiceUnavailable},
			"%s %s", method, path)
	}

	return domainerrors.ErrServiceUnavailable.WithDetails(fmt.Sprintf("%s %s: %v", method, path, err))
}

// statusError keeps the HTTP status reachable for callers (errors.As) while
// matching ErrServiceUnavailable under errors.Is.
type statusError struct {
	*httpStatusError
	base *domainerrors.BaseError
}

func (e *statusError) Is(target error) bool {
	return e.base.Is(target)
}

func (e *statusError) Unwrap() error {
	return e.httpStatusError
}
