package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/schedule"
	"go-shiftplan/internal/shared/contextutil"
	"go-shiftplan/internal/worktime"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDHeader   = "X-Request-ID"
	idempotencyHeader = "Idempotency-Key"

	defaultTimeout = 15 * time.Second
)

// Error is a non-2xx answer of the API.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to the shiftplan REST API. It implements workspace.Store.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.Named("apiclient")
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.L().Named("apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set(requestIDHeader, rid)
	}
	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set(idempotencyHeader, uuid.NewString())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || (decodeErr == nil && !env.Ok) {
		apiErr := &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if decodeErr == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
		}
		c.logger.Debug("api returned an error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("code", apiErr.Code),
		)
		return apiErr
	}
	if decodeErr != nil {
		return fmt.Errorf("%s %s: decode envelope: %w", method, path, decodeErr)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: decode data: %w", method, path, err)
	}
	return nil
}

func sedeQuery(sede string) url.Values {
	return url.Values{"location": []string{sede}}
}

// save updates id when set and creates the record when the API does not
// know it yet.
func (c *Client) save(ctx context.Context, collection, id string, body, out any) error {
	if id != "" {
		err := c.do(ctx, http.MethodPut, collection+"/"+url.PathEscape(id), nil, body, out)
		if !IsNotFound(err) {
			return err
		}
	}
	return c.do(ctx, http.MethodPost, collection, nil, body, out)
}

func (c *Client) ListSedes(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/sedes", nil, nil, &out)
	return out, err
}

func (c *Client) ListEmployees(ctx context.Context, sede string) ([]employee.EmployeeResponse, error) {
	var out []employee.EmployeeResponse
	err := c.do(ctx, http.MethodGet, "/employees", sedeQuery(sede), nil, &out)
	return out, err
}

func (c *Client) ListSchedules(ctx context.Context, sede string) ([]schedule.ScheduleResponse, error) {
	var out []schedule.ScheduleResponse
	err := c.do(ctx, http.MethodGet, "/schedules", sedeQuery(sede), nil, &out)
	return out, err
}

func (c *Client) ListWorkTimeConfigs(ctx context.Context, sede string) ([]worktime.ConfigResponse, error) {
	var out []worktime.ConfigResponse
	err := c.do(ctx, http.MethodGet, "/work-time-config", sedeQuery(sede), nil, &out)
	return out, err
}

func (c *Client) SaveEmployee(ctx context.Context, req employee.SaveEmployeeRequest) (employee.EmployeeResponse, error) {
	var out employee.EmployeeResponse
	err := c.save(ctx, "/employees", req.ID, req, &out)
	return out, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) SaveSchedule(ctx context.Context, req schedule.SaveScheduleRequest) (schedule.ScheduleResponse, error) {
	var out schedule.ScheduleResponse
	err := c.save(ctx, "/schedules", req.ID, req, &out)
	return out, err
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/schedules/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) SaveWorkTimeConfig(ctx context.Context, req worktime.SaveConfigRequest) (worktime.ConfigResponse, error) {
	var out worktime.ConfigResponse
	err := c.do(ctx, http.MethodPost, "/work-time-config", nil, req, &out)
	return out, err
}
