package payment

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
	ps "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/payment"
)

type Controller struct {
	Svc ps.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/payments/create
// @Summary Process a payment and record the transaction
// @Success 200 {object} map[string]any
// @Failure 400,401,500
func (h *Controller) Create(c echo.Context) error {
	var req CreatePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	uid, _ := c.Get("user_id").(int64)

	out, err := h.Svc.Record(c.Request().Context(), ps.RecordReq{
		UserID:        uid,
		Type:          model.TransactionType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		RelatedID:     req.RelatedID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch ps.Code(err) {
		case ps.ErrBadType, ps.ErrBadAmount:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "type and amount are required"})
		case ps.ErrDeclined:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "payment failed"})
		default:
			h.Log.Error("payment create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"transactionId": out.TransactionID,
		"reference":     out.Reference,
		"message":       "Payment processed successfully",
	})
}

// GET /v1/payments/wallet
func (h *Controller) Wallet(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	bal, err := h.Svc.Wallet(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("wallet read", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"balance": bal,
		"userId":  uid,
	})
}

// GET /v1/payments/transactions?type=&limit=
func (h *Controller) Transactions(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	rows, err := h.Svc.Transactions(c.Request().Context(), uid, c.QueryParam("type"), limit)
	if err != nil {
		h.Log.Error("transaction list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []model.Transaction{}
	}
	return c.JSON(http.StatusOK, rows)
}
