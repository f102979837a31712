// Package hook is the host-facing entry point of the notifier: it captures
// error events from the application's error path and hands them to the
// dispatcher. A failure in here must never mask or replace the original
// error, so every call is wrapped in its own recover.
package hook

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aleister1102/errnotify/internal/models"
	"github.com/aleister1102/errnotify/internal/notifier"
)

// UserResolver extracts the authenticated principal from a request, if any.
// The host application supplies this because session handling is its own.
type UserResolver func(*http.Request) *models.Principal

// ExceptionHook reports errors from the host application's error path
type ExceptionHook struct {
	dispatcher  *notifier.Dispatcher
	logger      zerolog.Logger
	resolveUser UserResolver
}

// NewExceptionHook creates a new exception hook
func NewExceptionHook(dispatcher *notifier.Dispatcher, logger zerolog.Logger) *ExceptionHook {
	return &ExceptionHook{
		dispatcher: dispatcher,
		logger:     logger.With().Str("module", "ExceptionHook").Logger(),
	}
}

// WithUserResolver sets the resolver used to attach user data to reports
func (h *ExceptionHook) WithUserResolver(resolver UserResolver) *ExceptionHook {
	h.resolveUser = resolver
	return h
}

// Report captures err as an error event, derives request context when req is
// present, and dispatches the notification. It returns the dispatcher's
// result and never panics.
func (h *ExceptionHook) Report(ctx context.Context, err error, req *http.Request) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().Interface("panic", r).Msg("Recovered panic while reporting error")
			sent = false
		}
	}()

	if err == nil {
		return false
	}

	event := models.CaptureError(err, 1)
	return h.dispatcher.Send(ctx, event, h.requestContext(req))
}

// Middleware wraps an HTTP handler, reporting recovered panics and
// responding with 500. The panic is reported, not swallowed silently: the
// client still observes the failure.
func (h *ExceptionHook) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.Report(r.Context(), models.NewPanicError(rec), r)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestContext derives the reportable request metadata: method, full URL
// and, through the resolver, the authenticated principal. Headers and body
// are never captured.
func (h *ExceptionHook) requestContext(req *http.Request) *models.RequestContext {
	if req == nil {
		return nil
	}

	fullURL := req.URL.String()
	if !req.URL.IsAbs() && req.Host != "" {
		scheme := "http"
		if req.TLS != nil {
			scheme = "https"
		}
		fullURL = scheme + "://" + req.Host + req.URL.RequestURI()
	}

	reqCtx := &models.RequestContext{
		Method: req.Method,
		URL:    fullURL,
	}
	if h.resolveUser != nil {
		reqCtx.User = h.resolveUser(req)
	}
	return reqCtx
}
