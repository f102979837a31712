package hook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/errnotify/internal/config"
	"github.com/aleister1102/errnotify/internal/counterstore"
	"github.com/aleister1102/errnotify/internal/models"
	"github.com/aleister1102/errnotify/internal/notifier"
	"github.com/aleister1102/errnotify/internal/notifier/slack"
)

type capturedWebhook struct {
	server   *httptest.Server
	calls    atomic.Int32
	payloads chan slack.MessagePayload
}

func newCapturedWebhook(t *testing.T) *capturedWebhook {
	t.Helper()
	webhook := &capturedWebhook{payloads: make(chan slack.MessagePayload, 16)}
	webhook.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhook.calls.Add(1)
		var payload slack.MessagePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
			webhook.payloads <- payload
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(webhook.server.Close)
	return webhook
}

func newTestHook(t *testing.T, webhookURL string) *ExceptionHook {
	t.Helper()
	cfg := config.NewDefaultNotificationConfig()
	cfg.Enabled = true
	cfg.SlackWebhookURL = webhookURL
	cfg.IncludeRequestData = true
	cfg.IncludeUserData = true

	dispatcher, err := notifier.NewDispatcher(cfg, counterstore.NewMemoryStore(), zerolog.Nop())
	require.NoError(t, err)
	return NewExceptionHook(dispatcher, zerolog.Nop())
}

func TestReport_DeliversNotification(t *testing.T) {
	webhook := newCapturedWebhook(t)
	h := newTestHook(t, webhook.server.URL)

	sent := h.Report(context.Background(), errors.New("disk full"), nil)

	assert.True(t, sent)
	payload := <-webhook.payloads
	require.Len(t, payload.Attachments, 1)
	assert.Contains(t, payload.Attachments[0].Fallback, "disk full")
}

func TestReport_NilError(t *testing.T) {
	webhook := newCapturedWebhook(t)
	h := newTestHook(t, webhook.server.URL)

	assert.False(t, h.Report(context.Background(), nil, nil))
	assert.Equal(t, int32(0), webhook.calls.Load())
}

func TestReport_RequestContext(t *testing.T) {
	webhook := newCapturedWebhook(t)
	h := newTestHook(t, webhook.server.URL).
		WithUserResolver(func(r *http.Request) *models.Principal {
			return &models.Principal{ID: "u-42", DisplayName: "Ada"}
		})

	req := httptest.NewRequest(http.MethodPost, "http://api.example.com/orders?id=9", nil)
	sent := h.Report(context.Background(), errors.New("boom"), req)

	assert.True(t, sent)
	payload := <-webhook.payloads
	blocks := payload.Attachments[0].Blocks

	var flattened string
	for _, block := range blocks {
		if block.Text != nil {
			flattened += block.Text.Text + "\n"
		}
		for _, field := range block.Fields {
			flattened += field.Text + "\n"
		}
	}
	assert.Contains(t, flattened, "POST")
	assert.Contains(t, flattened, "http://api.example.com/orders?id=9")
	assert.Contains(t, flattened, "u-42")
	assert.Contains(t, flattened, "Ada")
}

func TestMiddleware_RecoversAndReports(t *testing.T) {
	webhook := newCapturedWebhook(t)
	h := newTestHook(t, webhook.server.URL)

	handler := h.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "http://example.com/broken", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, int32(1), webhook.calls.Load())

	payload := <-webhook.payloads
	assert.Contains(t, payload.Attachments[0].Fallback, "PanicError")
	assert.Contains(t, payload.Attachments[0].Fallback, "handler exploded")
}

func TestMiddleware_PassesThroughHealthyHandlers(t *testing.T) {
	webhook := newCapturedWebhook(t)
	h := newTestHook(t, webhook.server.URL)

	handler := h.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "http://example.com/ok", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, int32(0), webhook.calls.Load())
}

// Reporting runs on the host's error path: even with a hopeless
// configuration it must fail silently instead of panicking.
func TestReport_NeverPanics(t *testing.T) {
	h := newTestHook(t, "http://127.0.0.1:1/unreachable")

	assert.NotPanics(t, func() {
		sent := h.Report(context.Background(), errors.New("boom"), nil)
		assert.False(t, sent)
	})
}
