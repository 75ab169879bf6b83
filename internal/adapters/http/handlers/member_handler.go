package handlers

import (
	"errors"

	"iclug-backend/internal/adapters/persistence/models"
	"iclug-backend/internal/adapters/persistence/repositories"
	"iclug-backend/internal/core/domain"
	"iclug-backend/internal/pkg/response"
	"iclug-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	memberRepo repositories.MemberRepository
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberRepo repositories.MemberRepository) *MemberHandler {
	return &MemberHandler{memberRepo: memberRepo}
}

// CreateMemberRequest represents create member request
type CreateMemberRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Active   *bool  `json:"active,omitempty"`
}

// Create creates a new member
// @Summary Create member
// @Description Register a new member
// @Tags Members
// @Accept json
// @Produce json
// @Param body body CreateMemberRequest true "Member data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var req CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.ValidateStruct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	// Members are active unless the request says otherwise
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	member := &models.Member{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Active:   active,
	}

	if err := h.memberRepo.Create(c.Context(), member); err != nil {
		return response.InternalServerError(c, "Failed to create member")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": member.ID,
	})
}

// Get gets a member by ID
// @Summary Get member
// @Description Get a single member by ID
// @Tags Members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} models.Member
// @Failure 404 {object} response.Response
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	member, err := h.memberRepo.GetByID(c.Context(), c.Params("id"))
	if errors.Is(err, domain.ErrMemberNotFound) {
		return response.NotFound(c, "Member not found")
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to get member")
	}

	return c.JSON(member)
}

// List lists all members
// @Summary List members
// @Description Get the full member list
// @Tags Members
// @Accept json
// @Produce json
// @Success 200 {array} models.Member
// @Failure 500 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	members, err := h.memberRepo.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return c.JSON(members)
}
