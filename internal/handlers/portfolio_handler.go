package handlers

import (
	"fmt"
	"log"

	"saham/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PortfolioHandler handles HTTP requests for holdings and sales.
type PortfolioHandler struct {
	service  *services.PortfolioService
	validate *validator.Validate
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(service *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the portfolio routes. All of them require an
// authenticated identity in the request locals.
func (h *PortfolioHandler) RegisterRoutes(router fiber.Router) {
	holdingRoutes := router.Group("/holdings")
	holdingRoutes.Get("/", h.HandleGetPortfolio)
	holdingRoutes.Post("/", h.HandleAddHolding)
	holdingRoutes.Post("/sell", h.HandleSellHolding)
	router.Get("/sales", h.HandleGetSales)
}

// AddHoldingRequest represents the request body for recording a purchase.
// Prices and share counts only have to be numeric; negative values are
// accepted deliberately.
type AddHoldingRequest struct {
	Ticker string  `json:"ticker" validate:"required,max=15"`
	Price  float64 `json:"price"`
	Shares float64 `json:"shares"`
}

// HandleAddHolding records a stock purchase for the authenticated user.
func (h *PortfolioHandler) HandleAddHolding(c *fiber.Ctx) error {
	owner, _ := c.Locals("username").(string)

	var req AddHoldingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add holding request body: %v", err)
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

	holding, err := h.service.AddHolding(owner, req.Ticker, req.Price, req.Shares)
	if err != nil {
		log.Printf("Error adding holding for %s: %v", owner, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add holding",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(holding)
}

// HandleGetPortfolio returns the authenticated user's holdings with live
// prices, plus their sale events. This is the stocks page of the tracker.
func (h *PortfolioHandler) HandleGetPortfolio(c *fiber.Ctx) error {
	owner, _ := c.Locals("username").(string)

	views, err := h.service.GetPortfolioView(owner)
	if err != nil {
		log.Printf("Error building portfolio view for %s: %v", owner, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve portfolio",
		})
	}

	sales, err := h.service.ListSales(owner)
	if err != nil {
		log.Printf("Error listing sales for %s: %v", owner, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve sales",
		})
	}

	return c.JSON(fiber.Map{
		"holdings": views,
		"sales":    sales,
	})
}

// SellHoldingRequest represents the request body for recording a sale. The
// holding ID is taken at face value; it is not checked against existing
// holdings.
type SellHoldingRequest struct {
	HoldingID uint    `json:"holding_id" validate:"required"`
	Price     float64 `json:"price"`
	Shares    float64 `json:"shares"`
}

// HandleSellHolding appends a sale event for the authenticated user.
func (h *PortfolioHandler) HandleSellHolding(c *fiber.Ctx) error {
	owner, _ := c.Locals("username").(string)

	var req SellHoldingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing sell request body: %v", err)
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

	sale, err := h.service.RecordSale(owner, req.HoldingID, req.Price, req.Shares)
	if err != nil {
		log.Printf("Error recording sale for %s: %v", owner, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not record sale",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(sale)
}

// HandleGetSales returns the authenticated user's sale events.
func (h *PortfolioHandler) HandleGetSales(c *fiber.Ctx) error {
	owner, _ := c.Locals("username").(string)

	sales, err := h.service.ListSales(owner)
	if err != nil {
		log.Printf("Error listing sales for %s: %v", owner, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve sales",
		})
	}

	return c.JSON(sales)
}
