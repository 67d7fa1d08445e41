package jablonet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alarmbridge/jablonet-adapter/internal/metrics"
)

const (
	// DefaultBaseURL is the Jablotron Cloud API root.
	DefaultBaseURL = "https://api.jablonet.net/api/2.2"
	// DefaultServiceType selects the JA100 endpoint family.
	DefaultServiceType = "JA100"
)

// encoding selects the request body format for one dispatch.
type encoding int

const (
	encodeJSON encoding = iota
	encodeForm
)

// Client wraps the Jablotron Cloud HTTP API: it owns the session lifecycle,
// classifies response statuses onto a typed error taxonomy, and exposes the
// typed read and control operations.
//
// Calls are sequential and blocking; Client is not safe for concurrent use.
type Client struct {
	logger  *zap.Logger
	baseURL string
	http    *http.Client
	session *Session
	pin     string
}

// NewClient constructs a Jablotron Cloud client. An empty baseURL selects
// DefaultBaseURL; a nil httpClient selects a 30s-timeout default.
func NewClient(logger *zap.Logger, baseURL string, creds Credentials, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		logger:  logger,
		baseURL: baseURL,
		http:    httpClient,
		session: newSession(logger, httpClient, baseURL, creds),
		pin:     creds.PinCode,
	}
}

// Login establishes a fresh session, replacing any prior one. Dispatch logs
// in on demand, so calling Login explicitly is only needed to validate
// credentials up front.
func (c *Client) Login(ctx context.Context) error {
	return c.session.Login(ctx)
}

// dispatch sends a logical request with the current session attached,
// transparently establishing the session on first use. When the response
// classifies as Unauthorized or SessionExpired the session is invalidated,
// re-established, and the request replayed exactly once; every other
// failure kind is returned as-is. The loop is bounded so persistent
// credential failure cannot recurse.
func (c *Client) dispatch(ctx context.Context, endpoint string, payload any, enc encoding, out any) error {
	for attempt := 0; ; attempt++ {
		if !c.session.Active() {
			if err := c.session.Login(ctx); err != nil {
				return err
			}
		}

		err := c.send(ctx, endpoint, payload, enc, out)
		if err == nil {
			return nil
		}
		if attempt == 0 && sessionLost(err) {
			c.logger.Warn("jablonet.session_lost",
				zap.String("endpoint", endpoint),
				zap.Error(err))
			c.session.Invalidate()
			continue
		}
		return err
	}
}

// send performs one HTTP exchange: encode, POST, classify, decode.
func (c *Client) send(ctx context.Context, endpoint string, payload any, enc encoding, out any) error {
	var body io.Reader
	contentType := "application/json"

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	switch enc {
	case encodeForm:
		// The settings update endpoint is the API's one form-encoded call:
		// the JSON document travels as the `data` form field.
		form := url.Values{"data": {string(data)}}
		body = strings.NewReader(form.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, body)
	if err != nil {
		return err
	}
	c.session.apply(req, contentType)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.IncRequest(endpoint, "transport_error")
		return fmt.Errorf("jablonet: %s: %w", endpoint, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, _ := io.ReadAll(resp.Body)
	metrics.ObserveRequest(endpoint, start)

	if err := classifyStatus(resp.StatusCode, raw); err != nil {
		metrics.IncRequest(endpoint, strconv.Itoa(resp.StatusCode))
		c.logger.Warn("jablonet.request_failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return err
	}
	metrics.IncRequest(endpoint, "ok")

	c.logger.Debug("jablonet.request_success",
		zap.String("endpoint", endpoint),
		zap.Duration("elapsed", time.Since(start)))

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("jablonet: decode %s response: %w", endpoint, err)
		}
	}
	return nil
}

// typedEndpoint prefixes an endpoint with its service-type family segment.
func typedEndpoint(serviceType, name string) string {
	if serviceType == "" {
		serviceType = DefaultServiceType
	}
	return serviceType + "/" + name
}
