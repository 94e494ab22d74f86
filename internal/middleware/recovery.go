package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicRecovery turns a handler panic into a 500, logged with the route and
// owner it happened for. http.ErrAbortHandler is passed on to net/http.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(r)
				}

				route := "unknown"
				if current := mux.CurrentRoute(req); current != nil && current.GetName() != "" {
					route = current.GetName()
				}
				log.WithFields(log.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
					"route":  route,
					"owner":  pkg.OwnerID(req),
					"ip":     pkg.ClientIP(req),
				}).Errorf("http: panic serving request: %v\n%s", r, debug.Stack())

				span := trace.SpanFromContext(req.Context())
				span.RecordError(fmt.Errorf("panic: %v", r))
				span.SetStatus(codes.Error, "panic serving "+route)

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(respWriter, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}
