package handlers

import (
	"errors"
	"fmt"
	"log"

	"saham/internal/models"
	"saham/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StopOrderHandler handles HTTP requests for stop orders.
type StopOrderHandler struct {
	service  *services.StopOrderService
	validate *validator.Validate
}

// NewStopOrderHandler creates a new StopOrderHandler.
func NewStopOrderHandler(service *services.StopOrderService) *StopOrderHandler {
	return &StopOrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the stop-order routes.
func (h *StopOrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/stoporders")
	orderRoutes.Get("/", h.HandleGetStopOrders)
	orderRoutes.Post("/", h.HandleCreateStopOrder)
}

// CreateStopOrderRequest represents the request body for a stop order.
type CreateStopOrderRequest struct {
	Ticker        string  `json:"ticker" validate:"required,max=15"`
	StartingPrice float64 `json:"starting_price"`
	Direction     string  `json:"direction" validate:"required,oneof=up down"`
	Percent       float64 `json:"percent"`
}

// HandleCreateStopOrder creates a stop order for the authenticated user.
func (h *StopOrderHandler) HandleCreateStopOrder(c *fiber.Ctx) error {
	owner, _ := c.Locals("username").(string)

	var req CreateStopOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing stop order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	order, err := h.service.CreateStopOrder(owner, req.Ticker, req.StartingPrice, models.Direction(req.Direction), req.Percent)
	if err != nil {
		log.Printf("Error creating stop order for %s: %v", owner, err)
		if errors.Is(err, services.ErrInvalidPercent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid percentage",
				"error":   err.Error(),
			})
		}
		if errors.Is(err, services.ErrQuoteUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Could not price the ticker",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create stop order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetStopOrders returns the authenticated user's stop orders.
func (h *StopOrderHandler) HandleGetStopOrders(c *fiber.Ctx) error {
	owner, _ := c.Locals("username").(string)

	orders, err := h.service.ListStopOrders(owner)
	if err != nil {
		log.Printf("Error listing stop orders for %s: %v", owner, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve stop orders",
		})
	}

	return c.JSON(orders)
}
