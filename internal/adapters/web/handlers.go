package web

import (
	"context"
	"errors"
	"strings"
	"time"

	"alpha-radar/internal/domain"
	"alpha-radar/internal/usecases"
	"alpha-radar/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// Scanner runs a full scan for a keyword list.
type Scanner interface {
	Execute(ctx context.Context, keywords []string, opts usecases.ScanOptions) (*domain.ScanReport, error)
}

// ScanRequest is the POST /api/scan body.
type ScanRequest struct {
	Keywords []string    `json:"keywords"`
	Options  ScanOptions `json:"options"`
}

// ScanOptions are the caller-tunable scan options.
type ScanOptions struct {
	SkipAIInsights *bool `json:"skip_ai_insights"`
}

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	scan    Scanner
	started time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(scan Scanner) *Handlers {
	return &Handlers{scan: scan, started: time.Now()}
}

// PostScan runs the two-stage scan pipeline for the requested keywords.
func (h *Handlers) PostScan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "request body must be JSON with a keywords array",
		})
	}

	keywords := make([]string, 0, len(req.Keywords))
	for _, kw := range req.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": h.friendlyError(domain.ErrNoKeywords),
		})
	}

	report, err := h.scan.Execute(c.UserContext(), keywords, usecases.ScanOptions{
		SkipAIInsights: req.Options.SkipAIInsights,
	})
	if err != nil {
		log.GlobalErrorCtx(c.UserContext(), "scan failed", "keywords", keywords, "error", err)
		return c.Status(h.statusFor(err)).JSON(fiber.Map{
			"error": h.friendlyError(err),
		})
	}

	return c.JSON(report)
}

// Health reports service liveness.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	})
}

func (h *Handlers) statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoKeywords):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrScanInFlight):
		return fiber.StatusConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, domain.ErrCompletionTimeout):
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

// friendlyError returns a neutral, non-blaming error message.
func (h *Handlers) friendlyError(err error) string {
	var stageErr *domain.StageError
	if errors.As(err, &stageErr) && stageErr.Stage == 1 {
		return "Post discovery failed for these keywords. Please try again in a moment."
	}

	switch {
	case errors.Is(err, domain.ErrNoKeywords):
		return "At least one keyword is required."
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	case errors.Is(err, domain.ErrScanInFlight):
		return "A scan is already running for this client. Wait for it to finish."
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, domain.ErrCompletionTimeout):
		return "The scan took too long to complete. Please try again."
	default:
		return "Unable to complete the scan right now. Please try again in a moment."
	}
}
