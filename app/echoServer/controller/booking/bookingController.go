package booking

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	bs "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/booking"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/bookings
// @Summary Request a booking for an item and date range
// @Success 201 {object} map[string]any
// @Failure 400,401,404,500
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	uid, _ := c.Get("user_id").(int64)

	b, err := h.Svc.Create(c.Request().Context(), uid, req.ItemID, start, end)
	if err != nil {
		return h.mapError(c, "booking create", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":   true,
		"bookingId": b.ID,
		"message":   "Booking request created successfully",
	})
}

// GET /v1/bookings?type=borrowed|lent
func (h *Controller) List(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.List(c.Request().Context(), uid, c.QueryParam("type"))
	if err != nil {
		h.Log.Error("booking list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []bs.Row{}
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /v1/bookings/:id/approve
func (h *Controller) Approve(c echo.Context) error {
	id, uid, err := h.idAndUser(c)
	if err != nil {
		return err
	}
	if err := h.Svc.Approve(c.Request().Context(), uid, id); err != nil {
		return h.mapError(c, "booking approve", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Booking approved successfully",
	})
}

// POST /v1/bookings/:id/reject
func (h *Controller) Reject(c echo.Context) error {
	id, uid, err := h.idAndUser(c)
	if err != nil {
		return err
	}
	if err := h.Svc.Reject(c.Request().Context(), uid, id); err != nil {
		return h.mapError(c, "booking reject", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Booking rejected successfully",
	})
}

// POST /v1/bookings/:id/return
func (h *Controller) Return(c echo.Context) error {
	id, uid, err := h.idAndUser(c)
	if err != nil {
		return err
	}
	out, err := h.Svc.Return(c.Request().Context(), uid, id)
	if err != nil {
		return h.mapError(c, "booking return", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"message":      "Item returned successfully",
		"lateFee":      out.LateFee,
		"refundAmount": out.RefundAmount,
	})
}

func (h *Controller) idAndUser(c echo.Context) (int64, int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	uid, _ := c.Get("user_id").(int64)
	return id, uid, nil
}

func (h *Controller) mapError(c echo.Context, op string, err error) error {
	switch bs.Code(err) {
	case bs.ErrItemNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
	case bs.ErrBookingNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
	case bs.ErrNotOwner, bs.ErrNotBorrower:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case bs.ErrOwnItem:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "cannot book your own item"})
	case bs.ErrUnavailable:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "item is not available"})
	case bs.ErrDateConflict:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "item is already booked for these dates"})
	case bs.ErrNotPending:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "booking is not pending"})
	case bs.ErrNotActive:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "booking is not active or approved"})
	case bs.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
