package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"realtor/internal/repository"
	"realtor/internal/seed"
)

// SeedHandler handles demo data seeding.
type SeedHandler struct {
	userRepo repository.UserRepository
	homeRepo repository.HomeRepository
	seedURL  string
}

// NewSeedHandler creates a new seed handler. seedURL points at a JSON
// seed document; the endpoint is disabled when it is empty.
func NewSeedHandler(userRepo repository.UserRepository, homeRepo repository.HomeRepository, seedURL string) *SeedHandler {
	return &SeedHandler{
		userRepo: userRepo,
		homeRepo: homeRepo,
		seedURL:  seedURL,
	}
}

// SeedDemo godoc
// @Summary Seed demo users and listings from the configured source
// @Tags seed
// @Produce json
// @Success 200 {object} seed.Result
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	if h.seedURL == "" {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{
			"error": "seeding is not configured",
		})
	}

	resp, err := http.Get(h.seedURL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to fetch seed data: %v", err),
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("seed source returned status: %d", resp.StatusCode),
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to read seed data: %v", err),
		})
	}

	var doc seed.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to parse seed JSON: %v", err),
		})
	}

	result, err := seed.Apply(c.Request().Context(), h.userRepo, h.homeRepo, &doc)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to seed: %v", err),
		})
	}

	return c.JSON(http.StatusOK, result)
}
