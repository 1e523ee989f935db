// Package client is the typed HTTP client for the hospital admin API.  It
// mirrors the /v1 CRUD surface one method per operation and decodes the
// server's {"items": ...} list envelopes and {"error": ...} failure bodies.
//
// The client performs no retries: the console treats every transport
// failure as terminal and simply keeps its previous snapshot.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/model"
)

// Error is a failure reported by the admin API.  Status holds the HTTP
// status code; Message carries the server-supplied error string when one
// was present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

type apiError struct {
	Message string `json:"error"`
}

// Client wraps a resty client configured for the admin API.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New builds a Client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: httpClient, logger: logger}
}

func apiErr(resp *resty.Response) error {
	e := &Error{Status: resp.StatusCode()}
	if body, ok := resp.Error().(*apiError); ok && body != nil {
		e.Message = body.Message
	}
	return e
}

// list fetches a collection endpoint and unwraps its items envelope.
func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var out struct {
		Items []T `json:"items"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get(path)
	if err != nil {
		c.logger.Warn("list request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return out.Items, nil
}

// create posts a payload and decodes the created record.
func create[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&apiError{}).
		Post(path)
	if err != nil {
		c.logger.Warn("create request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

// update puts a payload at a detail path and decodes the stored record.
func update[T any](ctx context.Context, c *Client, path string, id uint64, body any) (*T, error) {
	var out T
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&apiError{}).
		Put(fmt.Sprintf("%s/%d", path, id))
	if err != nil {
		c.logger.Warn("update request failed", zap.String("path", path), zap.Uint64("id", id), zap.Error(err))
		return nil, fmt.Errorf("update %s/%d: %w", path, id, err)
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return &out, nil
}

func (c *Client) remove(ctx context.Context, path string, id uint64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiError{}).
		Delete(fmt.Sprintf("%s/%d", path, id))
	if err != nil {
		c.logger.Warn("delete request failed", zap.String("path", path), zap.Uint64("id", id), zap.Error(err))
		return fmt.Errorf("delete %s/%d: %w", path, id, err)
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}

// --- hospitals ---

func (c *Client) ListHospitals(ctx context.Context) ([]model.Hospital, error) {
	return list[model.Hospital](ctx, c, "/v1/hospitals")
}

func (c *Client) CreateHospital(ctx context.Context, req model.HospitalRequest) (*model.Hospital, error) {
	return create[model.Hospital](ctx, c, "/v1/hospitals", req)
}

func (c *Client) UpdateHospital(ctx context.Context, id uint64, req model.HospitalRequest) (*model.Hospital, error) {
	return update[model.Hospital](ctx, c, "/v1/hospitals", id, req)
}

func (c *Client) DeleteHospital(ctx context.Context, id uint64) error {
	return c.remove(ctx, "/v1/hospitals", id)
}

// --- roles ---

func (c *Client) ListRoles(ctx context.Context) ([]model.Role, error) {
	return list[model.Role](ctx, c, "/v1/roles")
}

func (c *Client) CreateRole(ctx context.Context, req model.RoleRequest) (*model.Role, error) {
	return create[model.Role](ctx, c, "/v1/roles", req)
}

func (c *Client) UpdateRole(ctx context.Context, id uint64, req model.RoleRequest) (*model.Role, error) {
	return update[model.Role](ctx, c, "/v1/roles", id, req)
}

func (c *Client) DeleteRole(ctx context.Context, id uint64) error {
	return c.remove(ctx, "/v1/roles", id)
}

// --- users ---

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	return list[model.User](ctx, c, "/v1/users")
}

func (c *Client) CreateUser(ctx context.Context, req model.UserRequest) (*model.User, error) {
	return create[model.User](ctx, c, "/v1/users", req)
}

func (c *Client) UpdateUser(ctx context.Context, id uint64, req model.UserRequest) (*model.User, error) {
	return update[model.User](ctx, c, "/v1/users", id, req)
}

func (c *Client) DeleteUser(ctx context.Context, id uint64) error {
	return c.remove(ctx, "/v1/users", id)
}

// --- doctors ---

func (c *Client) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	return list[model.Doctor](ctx, c, "/v1/doctors")
}

func (c *Client) CreateDoctor(ctx context.Context, req model.DoctorRequest) (*model.Doctor, error) {
	return create[model.Doctor](ctx, c, "/v1/doctors", req)
}

func (c *Client) UpdateDoctor(ctx context.Context, id uint64, req model.DoctorRequest) (*model.Doctor, error) {
	return update[model.Doctor](ctx, c, "/v1/doctors", id, req)
}

func (c *Client) DeleteDoctor(ctx context.Context, id uint64) error {
	return c.remove(ctx, "/v1/doctors", id)
}
