package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /register and expects 201.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to POST /login
// and stores the token from the {"token": ...} body via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&tokenResp).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if tokenResp.Token == "" {
		return "", fmt.Errorf("login response: %w", utils.ErrNoBearerToken)
	}

	h.SetToken(tokenResp.Token)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return tokenResp.Token, nil
}

// ListTasks implements [ServerAdapter] via GET /tasks.
func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks := make([]models.Task, 0)

	resp, err := h.authedRequest(ctx).
		SetResult(&tasks).
		Get("/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tasks, nil
}

// CreateTask implements [ServerAdapter] via POST /tasks.
func (h *httpServerAdapter) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	var created models.Task

	resp, err := h.authedRequest(ctx).
		SetBody(task).
		SetResult(&created).
		Post("/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return created, nil
}

// UpdateTask implements [ServerAdapter] via PUT /tasks/{id}.
func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID int64, update models.TaskUpdate) (models.Task, error) {
	var updated models.Task

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(taskID, 10)).
		SetBody(update).
		SetResult(&updated).
		Put("/tasks/{id}")
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return updated, nil
}

// DeleteTask implements [ServerAdapter] via DELETE /tasks/{id}.
func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(taskID, 10)).
		Delete("/tasks/{id}")
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter] via GET /version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var versionResp models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&versionResp).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return versionResp.Version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
