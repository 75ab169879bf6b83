package handlers

import (
	"strconv"
	"time"

	"iclug-backend/internal/adapters/persistence/models"
	"iclug-backend/internal/adapters/persistence/repositories"
	"iclug-backend/internal/core/domain"
	"iclug-backend/internal/pkg/response"
	"iclug-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentRepo repositories.PaymentRepository
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentRepo repositories.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{paymentRepo: paymentRepo}
}

// CreatePaymentRequest represents create payment request
type CreatePaymentRequest struct {
	MemberID string     `json:"member_id" validate:"required"`
	Year     int        `json:"year" validate:"required,gte=2000,lte=2100"`
	Month    int        `json:"month" validate:"required,gte=1,lte=12"`
	Amount   float64    `json:"amount" validate:"gte=0"`
	Currency string     `json:"currency,omitempty" validate:"omitempty,oneof=EUR RSD"`
	Note     string     `json:"note,omitempty"`
	PaidAt   *time.Time `json:"paid_at,omitempty"`
}

// Create records a new payment
// @Summary Add payment
// @Description Record a monthly fee payment for a member
// @Tags Payments
// @Accept json
// @Produce json
// @Param body body CreatePaymentRequest true "Payment data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} response.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req CreatePaymentRequest
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

	payment := &models.Payment{
		MemberID: req.MemberID,
		Year:     req.Year,
		Month:    req.Month,
		Amount:   req.Amount,
		Currency: string(currency),
		Note:     req.Note,
	}
	// paid_at defaults to creation time when absent
	if req.PaidAt != nil {
		payment.PaidAt = *req.PaidAt
	}

	if err := h.paymentRepo.Create(c.Context(), payment); err != nil {
		return response.InternalServerError(c, "Failed to create payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": payment.ID,
	})
}

// List lists payments
// @Summary List payments
// @Description List payments, optionally filtered by member and year
// @Tags Payments
// @Accept json
// @Produce json
// @Param member_id query string false "Filter by member ID"
// @Param year query int false "Filter by year"
// @Success 200 {array} models.Payment
// @Failure 400 {object} response.Response
// @Router /payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	filter := repositories.PaymentFilter{
		MemberID: c.Query("member_id"),
	}

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return response.BadRequest(c, "year must be an integer")
		}
		filter.Year = year
	}

	payments, err := h.paymentRepo.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to list payments")
	}

	return c.JSON(payments)
}
