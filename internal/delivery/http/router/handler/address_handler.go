package handler

import (
	"log/slog"
	"net/http"

	"pickup/internal/delivery/http/response"
	"pickup/internal/domain/entity"
	"pickup/internal/domain/matching"
	"pickup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// CreateAddressRequest represents the request body for registering an address
type CreateAddressRequest struct {
	Street    string `json:"street" validate:"required"`
	Name      string `json:"name"`
	OtherName string `json:"otherName"`
}

// UpdateAddressRequest represents the request body for a field-wise address
// update. Absent fields are left unchanged.
type UpdateAddressRequest struct {
	Street    *string `json:"street"`
	Name      *string `json:"name"`
	OtherName *string `json:"otherName"`
	IsActive  *bool   `json:"isActive"`
}

// MatchResult is the resolve response: the outcome plus either the unique
// address or the candidate list.
type MatchResult struct {
	Outcome    matching.Outcome  `json:"outcome"`
	Address    *entity.Address   `json:"address,omitempty"`
	Candidates []*entity.Address `json:"candidates,omitempty"`
}

// ListAddresses handles listing registered addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.addressUC.ListAddresses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// GetAddress handles retrieving a single address
func (h *AddressHandler) GetAddress(c echo.Context) error {
	address, err := h.addressUC.GetAddress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Address retrieved successfully")
}

// CreateAddress handles registering a new address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), usecase.CreateAddressInput{
		Street:    req.Street,
		Name:      req.Name,
		OtherName: req.OtherName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// UpdateAddress handles a field-wise address update
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), c.Param("id"), usecase.UpdateAddressInput{
		Street:    req.Street,
		Name:      req.Name,
		OtherName: req.OtherName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// DeactivateAddress handles soft-deleting an address
func (h *AddressHandler) DeactivateAddress(c echo.Context) error {
	address, err := h.addressUC.DeactivateAddress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address, "Address deactivated successfully")
}

// MatchAddress handles kiosk and check-in form address resolution
func (h *AddressHandler) MatchAddress(c echo.Context) error {
	identifier := c.QueryParam("identifier")
	mode := usecase.MatchMode(c.QueryParam("mode"))

	result, err := h.addressUC.ResolveAddress(c.Request().Context(), identifier, mode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MatchResult{
		Outcome:    result.Outcome,
		Address:    result.Address,
		Candidates: result.Candidates,
	}, "Match completed")
}

// GetPickupCardQR handles rendering the printed pickup card QR code
func (h *AddressHandler) GetPickupCardQR(c echo.Context) error {
	qrCode, err := h.addressUC.GeneratePickupCardQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=pickup-card-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
