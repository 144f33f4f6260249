package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		nextCalled     bool
		wantUsername   string
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "scheme without token part → 401",
			authHeader:     "Bearer",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "only spaces → 401",
			authHeader:     "   ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token → next called, username in context",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
				if s != "valid-token" {
					return models.Token{}, service.ErrTokenIsInvalid
				}
				return models.Token{Username: "alice"}, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantUsername:   "alice",
		},
		{
			name:       "expired token → 403",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpired
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "invalid token → 403",
			authHeader: "Bearer forged-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsInvalid
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authSvc service.AuthService
			if tt.parseTokenFn != nil {
				authSvc = &mockAuthService{parseTokenFn: tt.parseTokenFn}
			} else {
				authSvc = &mockAuthService{parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}}
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			var capturedUsername any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedUsername = r.Context().Value(utils.UsernameCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.nextCalled {
				assert.Equal(t, tt.wantUsername, capturedUsername)
			}
		})
	}
}

// ---- error response bodies ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header error body", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		assert.JSONEq(t, `{"error":"`+service.ErrMissingToken.Error()+`"}`, rr.Body.String())
	})

	t.Run("expired token error body", func(t *testing.T) {
		rr := executeAuth(h, "Bearer expired", next)
		assert.JSONEq(t, `{"error":"`+service.ErrTokenIsExpired.Error()+`"}`, rr.Body.String())
	})
}

// ---- the original request is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Username: "alice"}, nil
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
	assert.Nil(t, req.Context().Value(utils.UsernameCtxKey))
}

// ---- concurrent requests ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
			return models.Token{Username: s}, nil
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, _ := utils.GetUsernameFromContext(r.Context())
		_, _ = w.Write([]byte(username))
	})
	middleware := h.auth(next)

	const n = 50
	var wg sync.WaitGroup
	codes := make(chan int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-user")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			if rr.Body.String() != "concurrent-user" {
				codes <- -1
				return
			}
			codes <- rr.Code
		}()
	}

	wg.Wait()
	close(codes)
	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
}
