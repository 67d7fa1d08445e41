package jablonet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/alarmbridge/jablonet-adapter/internal/metrics"
	"github.com/alarmbridge/jablonet-adapter/pkg/utils"
)

const (
	sessionCookie = "PHPSESSID"
	loginEndpoint = "userAuthorize.json"
)

// baseHeaders are sent on every request, mirroring the vendor's published
// mobile client profile.
var baseHeaders = map[string]string{
	"x-vendor-id":      "JABLOTRON:Jablotron",
	"x-client-version": "MYJ-PUB-ANDROID-15",
	"accept-encoding":  "*",
	"Accept":           "application/json",
	"Accept-Language":  "en",
}

// Credentials identify one Jablotron Cloud account. PinCode is the optional
// default authorization code applied to control actions when the caller
// does not supply one.
type Credentials struct {
	Username string
	Password string
	PinCode  string
}

// Session owns the mutable authenticated state of a client: the header set
// and the session id issued at login. It is created empty, populated by
// Login, cleared by Invalidate, and never persisted across restarts. At
// most one session id is held at a time; Login replaces any prior one.
//
// Session is not safe for concurrent use. The vendor API does not support
// concurrent sessions, so callers needing parallelism must serialize access
// externally or use one client per worker.
type Session struct {
	logger  *zap.Logger
	http    *http.Client
	baseURL string
	creds   Credentials
	cookie  string
}

func newSession(logger *zap.Logger, httpClient *http.Client, baseURL string, creds Credentials) *Session {
	return &Session{
		logger:  logger,
		http:    httpClient,
		baseURL: baseURL,
		creds:   creds,
	}
}

// Active reports whether a session id is currently held.
func (s *Session) Active() bool {
	return s.cookie != ""
}

// Invalidate drops the current session id, forcing a fresh login before the
// next dispatch.
func (s *Session) Invalidate() {
	s.cookie = ""
}

// apply stamps the vendor headers, the content type and, when present, the
// session cookie onto an outgoing request.
func (s *Session) apply(req *http.Request, contentType string) {
	for k, v := range baseHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", contentType)
	if s.cookie != "" {
		req.Header.Set("Cookie", sessionCookie+"="+s.cookie)
	}
}

// Login authenticates against userAuthorize.json and stores the session id
// from the response cookie. A transport-level success without a usable
// cookie yields ErrInvalidSession.
func (s *Session) Login(ctx context.Context) error {
	s.cookie = ""

	payload, err := json.Marshal(map[string]string{
		"login":    s.creds.Username,
		"password": s.creds.Password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/"+loginEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	s.apply(req, "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		metrics.IncLogin("transport_error")
		return fmt.Errorf("jablonet: login: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, _ := io.ReadAll(resp.Body)
	if err := classifyStatus(resp.StatusCode, body); err != nil {
		metrics.IncLogin("rejected")
		s.logger.Warn("jablonet.login_failed",
			zap.Int("status", resp.StatusCode),
			zap.String("user", utils.MaskEmail(s.creds.Username)))
		return err
	}

	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie && c.Value != "" {
			s.cookie = c.Value
			metrics.IncLogin("ok")
			s.logger.Info("jablonet.login_success",
				zap.String("user", utils.MaskEmail(s.creds.Username)))
			return nil
		}
	}

	metrics.IncLogin("invalid_session")
	return ErrInvalidSession
}
