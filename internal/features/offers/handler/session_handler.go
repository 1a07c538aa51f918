package handler

import (
	"errors"

	"moments-offers/internal/core/logger"
	"moments-offers/internal/features/offers/carousel"
	"moments-offers/internal/features/offers/domain"
	"moments-offers/internal/features/offers/ports"
	"moments-offers/internal/features/offers/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler handles HTTP requests for carousel sessions.
type SessionHandler struct {
	sessions ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CreateSession godoc
// @Summary Start a carousel session
// @Description Validates the request, fetches offers from the Moments API and starts displaying at the first offer. A fetch failure still creates the session, in the ERRORED phase, so it can be reloaded.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body domain.LoadRequest true "Load request"
// @Success 201 {object} ports.SessionState
// @Failure 400 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req domain.LoadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	state, err := h.sessions.CreateSession(c.Context(), req)
	if err != nil {
		// the only synchronous failure here is request validation
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetSession godoc
// @Summary Get session state
// @Description Returns the read-only snapshot of a carousel session.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ports.SessionState
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	state, err := h.sessions.State(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

// Reload godoc
// @Summary Retry the session's load
// @Description Re-runs the original load request. This is the retry path for sessions in the ERRORED phase.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ports.SessionState
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/reload [post]
func (h *SessionHandler) Reload(c *fiber.Ctx) error {
	state, err := h.sessions.Reload(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

// Next godoc
// @Summary Advance to the next offer
// @Description Moves to the next offer and fires its impression beacons. At the last offer the call is a no-op and at_boundary is true.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ports.NavigationResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/next [post]
func (h *SessionHandler) Next(c *fiber.Ctx) error {
	result, err := h.sessions.Next(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// Previous godoc
// @Summary Go back to the previous offer
// @Description Moves to the previous offer and fires its impression beacons. At the first offer the call is a no-op and at_boundary is true.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ports.NavigationResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/previous [post]
func (h *SessionHandler) Previous(c *fiber.Ctx) error {
	result, err := h.sessions.Previous(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// Accept godoc
// @Summary Accept the current offer
// @Description Returns the offer's click-through URL for the client to open. On the last offer this fires the close beacon and ends the session; otherwise it advances to the next offer.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ports.InteractionResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/accept [post]
func (h *SessionHandler) Accept(c *fiber.Ctx) error {
	result, err := h.sessions.Accept(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// Decline godoc
// @Summary Decline the current offer
// @Description Fires the offer's no-thanks beacon. On the last offer this also fires the close beacon and ends the session; otherwise it advances to the next offer.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ports.InteractionResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/decline [post]
func (h *SessionHandler) Decline(c *fiber.Ctx) error {
	result, err := h.sessions.Decline(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// CloseSession godoc
// @Summary Close the session
// @Description Fires the current offer's close beacon when present and moves the session to the terminal CLOSED phase.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} ports.SessionState
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /sessions/{id}/close [post]
func (h *SessionHandler) CloseSession(c *fiber.Ctx) error {
	state, err := h.sessions.Close(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(state)
}

// RemoveSession godoc
// @Summary Discard the session
// @Description Closes the session if still open and removes it from the registry.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) RemoveSession(c *fiber.Ctx) error {
	if err := h.sessions.Remove(c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// fail maps service errors to HTTP statuses.
func (h *SessionHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "session not found",
			RayID:   rayID(c),
		})
	case errors.Is(err, carousel.ErrNotDisplaying), errors.Is(err, carousel.ErrCannotClose):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	default:
		logger.Get().Error("Session operation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
			RayID:   rayID(c),
		})
	}
}

// rayID extracts the request id set by the requestid middleware, if any.
func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
