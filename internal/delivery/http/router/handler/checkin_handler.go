package handler

import (
	"log/slog"
	"net/http"

	"pickup/internal/delivery/http/response"
	"pickup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckInHandlerParams holds dependencies for CheckInHandler, injected by Fx.
type CheckInHandlerParams struct {
	fx.In

	CheckInUC usecase.CheckInUsecase
	Logger    *slog.Logger
}

// CheckInHandler holds dependencies for check-in-related handlers
type CheckInHandler struct {
	checkInUC usecase.CheckInUsecase
	logger    *slog.Logger
}

// NewCheckInHandler is the constructor for CheckInHandler
func NewCheckInHandler(params CheckInHandlerParams) *CheckInHandler {
	return &CheckInHandler{
		checkInUC: params.CheckInUC,
		logger:    params.Logger,
	}
}

// AdmitRequest represents the request body for a check-in admission.
// Blank identifiers are rejected by the admission itself so the typed
// empty-identifier error reaches the client.
type AdmitRequest struct {
	Identifier string `json:"identifier"`
}

// ListCheckIns handles listing active check-ins, newest first
func (h *CheckInHandler) ListCheckIns(c echo.Context) error {
	checkIns, err := h.checkInUC.ListActiveCheckIns(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIns, "Check-ins retrieved successfully")
}

// GetCheckIn handles retrieving a check-in joined with its address
func (h *CheckInHandler) GetCheckIn(c echo.Context) error {
	checkIn, err := h.checkInUC.GetCheckIn(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIn, "Check-in retrieved successfully")
}

// Admit handles a new check-in admission
func (h *CheckInHandler) Admit(c echo.Context) error {
	var req AdmitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}

	checkIn, err := h.checkInUC.Admit(c.Request().Context(), req.Identifier)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, checkIn, "Checked in successfully")
}

// CheckOut handles transitioning a check-in to checked-out
func (h *CheckInHandler) CheckOut(c echo.Context) error {
	checkIn, err := h.checkInUC.CheckOut(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIn, "Checked out successfully")
}

// Cancel handles cancelling a check-in
func (h *CheckInHandler) Cancel(c echo.Context) error {
	checkIn, err := h.checkInUC.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIn, "Check-in cancelled successfully")
}

// DailyStats handles the per-day active check-in counts
func (h *CheckInHandler) DailyStats(c echo.Context) error {
	stats, err := h.checkInUC.DailyStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Check-in statistics retrieved successfully")
}
