package web

import (
	"sync"
	"time"

	"alpha-radar/internal/domain"
	"alpha-radar/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// ScanLimiter bounds scan traffic per client IP: at most one scan in
// flight, and at most limit scans per window.
type ScanLimiter struct {
	mu      sync.Mutex
	active  map[string]bool
	history map[string][]time.Time
	limit   int
	window  time.Duration
}

// NewScanLimiter creates a scan limiter allowing limit scans per window
// for each IP.
func NewScanLimiter(limit int, window time.Duration) *ScanLimiter {
	sl := &ScanLimiter{
		active:  make(map[string]bool),
		history: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}
	go sl.cleanup()
	return sl
}

// Begin claims a scan slot for the IP. The caller must End on success.
func (sl *ScanLimiter) Begin(ip string) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	if sl.active[ip] {
		return domain.ErrScanInFlight
	}

	cutoff := time.Now().Add(-sl.window)
	var recent int
	for _, t := range sl.history[ip] {
		if t.After(cutoff) {
			recent++
		}
	}
	if recent >= sl.limit {
		return domain.ErrRateLimited
	}

	sl.active[ip] = true
	sl.history[ip] = append(sl.history[ip], time.Now())
	return nil
}

// End releases the in-flight slot for the IP.
func (sl *ScanLimiter) End(ip string) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	delete(sl.active, ip)
}

// Middleware rejects scans that would exceed the per-IP limits.
func (sl *ScanLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if err := sl.Begin(ip); err != nil {
			status := fiber.StatusConflict
			msg := "A scan is already running for this client. Wait for it to finish."
			if err == domain.ErrRateLimited {
				status = fiber.StatusTooManyRequests
				msg = "Too many scans. Please wait a moment and try again."
			}
			log.GlobalWarnCtx(c.UserContext(), "scan rejected", "ip", ip, "error", err)
			return c.Status(status).JSON(fiber.Map{"error": msg})
		}
		defer sl.End(ip)
		return c.Next()
	}
}

// cleanup periodically drops stale history entries.
func (sl *ScanLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		sl.mu.Lock()
		cutoff := time.Now().Add(-sl.window)
		for ip, timestamps := range sl.history {
			var recent []time.Time
			for _, t := range timestamps {
				if t.After(cutoff) {
					recent = append(recent, t)
				}
			}
			if len(recent) == 0 {
				delete(sl.history, ip)
			} else {
				sl.history[ip] = recent
			}
		}
		sl.mu.Unlock()
	}
}

// RequestIDConfig returns the configuration for Fiber's requestid middleware.
// Uses X-Request-ID header, generates UUID if not present.
func RequestIDConfig() requestid.Config {
	return requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: "requestid",
	}
}

// RequestIDToContextMiddleware bridges Fiber's requestid to pkg/log context.
// Must be used AFTER requestid.New() middleware.
func RequestIDToContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if reqID, ok := c.Locals("requestid").(string); ok && reqID != "" {
			c.SetUserContext(log.WithRequestID(c.UserContext(), reqID))
		}
		return c.Next()
	}
}

// RequestLoggerMiddleware logs HTTP requests in structured JSON format.
// Must be used AFTER RequestIDToContextMiddleware.
func RequestLoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		ctx := c.UserContext()
		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"ip", c.IP(),
			"user_agent", c.Get("User-Agent"),
		}
		if err != nil {
			fields = append(fields, "error", err.Error())
		}

		switch {
		case status >= 500:
			log.GlobalErrorCtx(ctx, "request completed", fields...)
		case status >= 400:
			log.GlobalWarnCtx(ctx, "request completed", fields...)
		default:
			log.GlobalInfoCtx(ctx, "request completed", fields...)
		}

		return err
	}
}
