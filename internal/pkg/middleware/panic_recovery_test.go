package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBufferLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	var logBuffer bytes.Buffer
	zapLogger := newBufferLogger(&logBuffer)

	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
		setupContext func(c echo.Context)
	}{
		{
			name:         "string panic",
			panicValue:   "test panic message",
			expectInLogs: []string{"test panic message", "stack_trace", "Panic recovered during request processing"},
		},
		{
			name:         "error panic",
			panicValue:   fmt.Errorf("test error panic"),
			expectInLogs: []string{"test error panic", "*errors.errorString"},
		},
		{
			name:         "panic with user context",
			panicValue:   "user context panic",
			expectInLogs: []string{"user context panic", "user123"},
			setupContext: func(c echo.Context) {
				c.Set(ContextUserID, "user123")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuffer.Reset()

			e := echo.New()
			handler := PanicRecoveryMiddleware(zapLogger)(func(c echo.Context) error {
				if tt.setupContext != nil {
					tt.setupContext(c)
				}
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("User-Agent", "test-agent")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler(c)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "Internal Server Error", response["error"])

			logOutput := logBuffer.String()
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logOutput, expected)
			}
			assert.Contains(t, logOutput, "/test")
			assert.Contains(t, logOutput, "test-agent")
		})
	}
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(nil)
	})
}

func TestSendPanicResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sendPanicResponse(c, "test-request-456")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "test-request-456", response["request_id"])
}

func TestSendPanicResponse_NoRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sendPanicResponse(c, "")

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotContains(t, response, "request_id")
}
