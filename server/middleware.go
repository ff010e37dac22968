package server

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasuboski/streamportal/pkg/logger"
)

const processTimeHeader = "X-Process-Time"

// LogMiddleware attaches a request scoped logger, stamps the processing time and logs each completed request
func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			log := s.baseLogger.With("request_path", r.URL.Path, "id", uuid.New().String())

			rw := &responseWriter{ResponseWriter: w, start: start, status: http.StatusOK}
			h.ServeHTTP(rw, r.WithContext(logger.WithCtx(r.Context(), log)))

			log.Infow("request completed",
				"method", r.Method,
				"client_ip", clientIP(r),
				"status", rw.status,
				"duration", time.Since(start),
				"size", humanize.Bytes(uint64(rw.written)),
			)
		})
	}
}

// RateLimitMiddleware rejects clients that spent their request budget. Health checks are never limited.
func (s Server) RateLimitMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.limiter == nil || r.URL.Path == "/health" || r.URL.Path == "/healthz" {
				h.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			if !s.limiter.Allow(ip) {
				logger.FromCtx(r.Context()).Warnw("rate limit exceeded", "client_ip", ip)
				writeError(w, r, errRateLimited)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the first X-Forwarded-For entry, then X-Real-IP, then the peer address
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// responseWriter records the status and size of a response and sets the processing time header before the status is sent
type responseWriter struct {
	http.ResponseWriter
	start       time.Time
	status      int
	written     int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	if rw.wroteHeader {
		return
	}
	rw.wroteHeader = true
	rw.status = status
	rw.Header().Set(processTimeHeader, strconv.FormatFloat(time.Since(rw.start).Seconds(), 'f', -1, 64))
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}
