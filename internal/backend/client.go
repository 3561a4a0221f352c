// Package backend is the HTTP client for the timesheet review API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/alexanderramin/timereview/internal/domain"
	"golang.org/x/oauth2"
)

// StatusResult is the {status, message} answer of the mutation endpoints.
// OK=false is a normal answer, not an error.
type StatusResult struct {
	OK      bool
	Message string
}

// Client provides access to the review backend.
type Client interface {
	FetchNotifications(ctx context.Context) ([]domain.Notification, error)
	GetAdminDetails(ctx context.Context) (*domain.AdminProfile, error)
	FetchPendingSummaries(ctx context.Context) ([]domain.PendingSummary, error)
	FetchWeekSheet(ctx context.Context, userID string) (*domain.WeekSheet, error)

	// ManageTimesheetStatus approves or rejects a single row.
	ManageTimesheetStatus(ctx context.Context, timesheetID string, action domain.ReviewAction) (*StatusResult, error)

	// ManageAllTimesheets approves or rejects a user's whole sheet.
	ManageAllTimesheets(ctx context.Context, userID, timesheetID, note string, action domain.BulkAction) (*StatusResult, error)
}

// httpClient implements Client over net/http.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for cfg. A non-empty token is sent as a
// bearer token on every request.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	var transport http.RoundTripper = &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 5 * time.Second,
		}).DialContext,
	}
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"}),
			Base:   transport,
		}
	}
	return &httpClient{
		cfg:      cfg,
		http:     &http.Client{Transport: transport},
		observer: observer,
	}
}

// envelope is the common {status, message, data} response body.
type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// notificationsBody has no status flag; failure is signalled by HTTP status.
type notificationsBody struct {
	Data []domain.Notification `json:"data"`
}

type rowStatusRequest struct {
	Action domain.ReviewAction `json:"action"`
}

type bulkStatusRequest struct {
	TimesheetID string            `json:"timesheet_id"`
	Note        string            `json:"note"`
	ActionType  domain.BulkAction `json:"action_type"`
}

func (c *httpClient) FetchNotifications(ctx context.Context) ([]domain.Notification, error) {
	var body notificationsBody
	if err := c.call(ctx, "fetch_notifications", http.MethodGet, "/dashboard/notifications", nil, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return []domain.Notification{}, nil
	}
	return body.Data, nil
}

func (c *httpClient) GetAdminDetails(ctx context.Context) (*domain.AdminProfile, error) {
	var body envelope[domain.AdminProfile]
	if err := c.call(ctx, "get_admin_details", http.MethodGet, "/profile/admin", nil, &body); err != nil {
		return nil, err
	}
	if !body.Status {
		return nil, rejected(body.Message)
	}
	return &body.Data, nil
}

func (c *httpClient) FetchPendingSummaries(ctx context.Context) ([]domain.PendingSummary, error) {
	var body envelope[[]domain.PendingSummary]
	if err := c.call(ctx, "fetch_pending", http.MethodGet, "/review-timesheets/pending", nil, &body); err != nil {
		return nil, err
	}
	if !body.Status {
		return nil, rejected(body.Message)
	}
	return body.Data, nil
}

func (c *httpClient) FetchWeekSheet(ctx context.Context, userID string) (*domain.WeekSheet, error) {
	var body envelope[domain.WeekSheet]
	path := "/review-timesheets/users/" + url.PathEscape(userID)
	if err := c.call(ctx, "fetch_week_sheet", http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}
	if !body.Status {
		return nil, rejected(body.Message)
	}
	if body.Data.UserID == "" {
		body.Data.UserID = userID
	}
	return &body.Data, nil
}

func (c *httpClient) ManageTimesheetStatus(ctx context.Context, timesheetID string, action domain.ReviewAction) (*StatusResult, error) {
	var body envelope[json.RawMessage]
	path := "/review-timesheets/" + url.PathEscape(timesheetID) + "/status"
	if err := c.call(ctx, "manage_timesheet_status", http.MethodPut, path, rowStatusRequest{Action: action}, &body); err != nil {
		return nil, err
	}
	return &StatusResult{OK: body.Status, Message: body.Message}, nil
}

func (c *httpClient) ManageAllTimesheets(ctx context.Context, userID, timesheetID, note string, action domain.BulkAction) (*StatusResult, error) {
	var body envelope[json.RawMessage]
	path := "/review-timesheets/users/" + url.PathEscape(userID) + "/status"
	req := bulkStatusRequest{TimesheetID: timesheetID, Note: note, ActionType: action}
	if err := c.call(ctx, "manage_all_timesheets", http.MethodPut, path, req, &body); err != nil {
		return nil, err
	}
	return &StatusResult{OK: body.Status, Message: body.Message}, nil
}

// call performs one request and decodes the JSON response into out.
// Reads and mutations are never retried.
func (c *httpClient) call(ctx context.Context, name, method, path string, in, out any) error {
	start := time.Now()
	mutation := method != http.MethodGet

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.CallTimeout(mutation))*time.Millisecond)
	defer cancel()

	code, err := c.doRequest(ctx, method, path, in, out)
	if err != nil && ctx.Err() != nil {
		err = fmt.Errorf("%s: %w", name, ErrTimeout)
	} else if err != nil && isConnectionError(err) {
		err = fmt.Errorf("%s: %w", name, ErrUnavailable)
	} else if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
	}

	c.observer.OnCallComplete(CallEvent{
		Call:       name,
		Method:     method,
		Path:       path,
		LatencyMs:  time.Since(start).Milliseconds(),
		StatusCode: code,
		Success:    err == nil,
		ErrorCode:  errorCode(err),
	})
	return err
}

func (c *httpClient) doRequest(ctx context.Context, method, path string, in, out any) (int, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return httpResp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return httpResp.StatusCode, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, httpResp.StatusCode, truncate(string(respBody), 200))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return httpResp.StatusCode, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return httpResp.StatusCode, nil
}

func rejected(message string) error {
	if message == "" {
		return ErrRejected
	}
	return fmt.Errorf("%w: %s", ErrRejected, message)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnexpectedStatus):
		return "HTTP_STATUS"
	case errors.Is(err, ErrDecode):
		return "DECODE"
	default:
		return "UNKNOWN"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
