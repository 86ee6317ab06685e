package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/BenDePortival/student-collaboration-api/models"
	"github.com/BenDePortival/student-collaboration-api/repositories"
)

// ChartHandler handles HTTP operations for saved charts.
type ChartHandler struct {
	Charts repositories.ChartStore
}

func NewChartHandler(charts repositories.ChartStore) *ChartHandler {
	return &ChartHandler{Charts: charts}
}

type CreateChartRequest struct {
	Title     string `json:"title"`
	ChartType string `json:"chart_type"`
	Data      string `json:"data"`
}

// CreateChart handles POST /api/charts
func (h *ChartHandler) CreateChart(c *fiber.Ctx) error {
	userID, ok := c.Locals("x-user-id").(uint)
	if !ok {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Could not get user ID from token"})
	}

	var req CreateChartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Failed to parse request body"})
	}
	if req.Title == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Title is required"})
	}

	chart := &models.Chart{
		OwnerID:   userID,
		Title:     req.Title,
		ChartType: req.ChartType,
		Data:      req.Data,
	}
	if err := h.Charts.Create(chart); err != nil {
		log.Printf("Failed to create chart: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create chart"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Chart created successfully",
		"chart":   chart,
	})
}

// ListCharts handles GET /api/charts, returning the caller's own charts.
func (h *ChartHandler) ListCharts(c *fiber.Ctx) error {
	userID, ok := c.Locals("x-user-id").(uint)
	if !ok {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Could not get user ID from token"})
	}

	charts, err := h.Charts.ForOwner(userID)
	if err != nil {
		log.Printf("Failed to list charts: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list charts"})
	}
	return c.JSON(fiber.Map{"charts": charts})
}

// GetChart handles GET /api/charts/:id
func (h *ChartHandler) GetChart(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Invalid chart ID"})
	}

	chart, err := h.Charts.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Chart not found"})
		}
		log.Printf("Chart lookup failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load chart"})
	}
	return c.JSON(fiber.Map{"chart": chart})
}
