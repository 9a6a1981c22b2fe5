package handler

import (
	"log/slog"
	"net/http"

	"library/internal/delivery/http/response"
	"library/internal/domain/entity"
	"library/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReservationHandlerParams holds dependencies for ReservationHandler, injected by Fx.
type ReservationHandlerParams struct {
	fx.In

	ReservationUC usecase.ReservationUsecase
	Logger        *slog.Logger
}

type ReservationHandler struct {
	reservationUC usecase.ReservationUsecase
	logger        *slog.Logger
}

func NewReservationHandler(params ReservationHandlerParams) *ReservationHandler {
	return &ReservationHandler{
		reservationUC: params.ReservationUC,
		logger:        params.Logger,
	}
}

// UpdateStatusRequest is the body of PATCH /admin/reservations/:id
type UpdateStatusRequest struct {
	Status entity.ReservationStatus `json:"status" validate:"required,oneof=PENDING READY COMPLETED"`
}

// VerifyRequest is the passphrase a patron gives at the counter
type VerifyRequest struct {
	Passphrase string `json:"passphrase" validate:"required"`
}

// Reserve handles POST /books/:id/reservations
func (h *ReservationHandler) Reserve(c echo.Context) error {
	var req usecase.ReservationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reservation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reservation, err := h.reservationUC.Reserve(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reservation, "予約を受け付けました")
}

func (h *ReservationHandler) ListReservations(c echo.Context) error {
	reservations, err := h.reservationUC.ListReservations(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservations, "")
}

func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	reservation, err := h.reservationUC.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reservation, "Reservation updated")
}

func (h *ReservationHandler) VerifyPassphrase(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid passphrase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	verified, err := h.reservationUC.VerifyPassphrase(c.Request().Context(), c.Param("id"), req.Passphrase)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"verified": verified}, "")
}

// PickupQRCode returns the reservation's pickup code as a PNG
func (h *ReservationHandler) PickupQRCode(c echo.Context) error {
	png, err := h.reservationUC.PickupQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ReservationHandler) DeleteReservation(c echo.Context) error {
	if err := h.reservationUC.DeleteReservation(c.Request().Context(), c.Param("id"), confirmed(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
