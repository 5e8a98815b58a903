package catalog

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the gift search endpoint.
type Handler struct {
	repo   Repository
	logger *slog.Logger
}

// NewHandler builds a catalog HTTP handler.
func NewHandler(repo Repository, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// Search translates query parameters into a Filter and returns every match.
// Absent or blank parameters are skipped, so a bare request returns the full
// catalog.
func (h *Handler) Search(c *fiber.Ctx) error {
	filter := Filter{
		Name:      c.Query("name"),
		Category:  c.Query("category"),
		Condition: c.Query("condition"),
	}

	if raw := strings.TrimSpace(c.Query("age_years")); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "age_years must be an integer")
		}
		filter.AgeYears = &age
	}

	gifts, err := h.repo.Search(c.UserContext(), filter)
	if err != nil {
		h.logger.Error("gift search failed", slog.Any("error", err))
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}

	return c.Status(http.StatusOK).JSON(gifts)
}
