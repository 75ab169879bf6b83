package handlers

import (
	"time"

	"iclug-backend/internal/adapters/persistence/models"
	"iclug-backend/internal/adapters/persistence/repositories"
	"iclug-backend/internal/core/domain"
	"iclug-backend/internal/pkg/response"
	"iclug-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// DonationHandler handles donation endpoints
type DonationHandler struct {
	donationRepo repositories.DonationRepository
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationRepo repositories.DonationRepository) *DonationHandler {
	return &DonationHandler{donationRepo: donationRepo}
}

// CreateDonationRequest represents create donation request
type CreateDonationRequest struct {
	Name      string     `json:"name" validate:"required"`
	Amount    float64    `json:"amount" validate:"gte=0"`
	Currency  string     `json:"currency,omitempty" validate:"omitempty,oneof=EUR RSD"`
	Purpose   string     `json:"purpose,omitempty"`
	DonatedAt *time.Time `json:"donated_at,omitempty"`
}

// Create records a new donation
// @Summary Add donation
// @Description Record a one-off donation
// @Tags Donations
// @Accept json
// @Produce json
// @Param body body CreateDonationRequest true "Donation data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} response.Response
// @Router /donations [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	var req CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.ValidateStruct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	currency := domain.Currency(req.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	donation := &models.Donation{
		Name:     req.Name,
		Amount:   req.Amount,
		Currency: string(currency),
		Purpose:  req.Purpose,
	}
	// donated_at defaults to creation time when absent
	if req.DonatedAt != nil {
		donation.DonatedAt = *req.DonatedAt
	}

	if err := h.donationRepo.Create(c.Context(), donation); err != nil {
		return response.InternalServerError(c, "Failed to create donation")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": donation.ID,
	})
}

// List lists all donations
// @Summary List donations
// @Description Get the full donation list
// @Tags Donations
// @Accept json
// @Produce json
// @Success 200 {array} models.Donation
// @Failure 500 {object} response.Response
// @Router /donations [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	donations, err := h.donationRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list donations")
	}

	return c.JSON(donations)
}
