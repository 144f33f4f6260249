package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	ctx := l.WithContext(r.Context())
	return r.WithContext(ctx)
}

// makeRequest creates a test request with a logger writing to buf in context.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return injectLogger(req, l)
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/tasks",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/tasks"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 201",
			method:          http.MethodPost,
			path:            "/register",
			handlerStatus:   http.StatusCreated,
			handlerResponse: `{"message":"User registered successfully"}`,
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/register"`,
				`"status":201`,
			},
		},
		{
			name:          "DELETE 204 no body",
			method:        http.MethodDelete,
			path:          "/tasks/1",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"uri":"/tasks/1"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "PUT 404",
			method:          http.MethodPut,
			path:            "/tasks/99",
			handlerStatus:   http.StatusNotFound,
			handlerResponse: `{"error":"task was not found"}`,
			checkLogContains: []string{
				`"status":404`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/tasks?status=Pending",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			checkLogContains: []string{
				`"uri":"/tasks?status=Pending"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			req := makeRequest(tt.method, tt.path, &logBuf)
			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logOutput := logBuf.String()
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected, "log should contain: %s", expected)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	req := makeRequest(http.MethodGet, "/tasks", &logBuf)
	withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, logBuf.String(), `"size":1024`)
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	})

	req := makeRequest(http.MethodGet, "/version", &logBuf)
	rr := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_DurationAccuracy(t *testing.T) {
	delay := 50 * time.Millisecond
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	req := makeRequest(http.MethodGet, "/tasks", &logBuf)

	start := time.Now()
	withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Contains(t, logBuf.String(), `"duration":`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	req := makeRequest(http.MethodGet, "/panic", &logBuf)

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), req)
	}, "withLogging should not recover panics")
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	nop := logger.Nop()
	req := httptest.NewRequest(http.MethodGet, "/nop", nil)
	req = req.WithContext(nop.Logger.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
