package apitest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
)

type ctxKey struct{}

type authContext struct {
	userID int64
	token  string
}

func authFrom(r *http.Request) authContext {
	a, _ := r.Context().Value(ctxKey{}).(authContext)
	return a
}

// withTraceID records and echoes X-Trace-ID and attaches a request logger
// carrying it to the context.
func (s *Server) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		s.lastTrace.Store(traceID)

		l := s.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		if traceID != "" {
			w.Header().Set(traceIDHeader, traceID)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			_, _ = utils.WriteError(w, http.StatusUnauthorized, "Unauthenticated.", nil)
			return
		}

		s.mu.Lock()
		userID, found := s.tokens[token]
		s.mu.Unlock()
		if !found {
			_, _ = utils.WriteError(w, http.StatusUnauthorized, "Unauthenticated.", nil)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, authContext{userID: userID, token: token})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// responseWriter records the status and body size written by a handler.
// WriteHeader is forwarded at most once.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
