package item

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
	is "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/item"
)

type Controller struct {
	Svc is.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/items?category=&search=
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context(), c.QueryParam("category"), c.QueryParam("search"))
	if err != nil {
		h.Log.Error("item list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []is.ListRow{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /v1/items/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	d, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, "item detail", err)
	}
	return c.JSON(http.StatusOK, d)
}

// POST /v1/items
// @Summary Create a listing; a pending listing fee is owed when one is
// configured.
// @Success 201 {object} map[string]any
// @Failure 400,401,500
func (h *Controller) Create(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	uid, _ := c.Get("user_id").(int64)

	it := itemFromReq(req)
	it.OwnerID = uid

	out, err := h.Svc.Create(c.Request().Context(), it)
	if err != nil {
		return h.mapError(c, "item create", err)
	}

	msg := "Item created successfully"
	if out.ListingFeeID != nil {
		msg = "Item created. Please pay listing fee to activate."
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"success":      true,
		"itemId":       out.ItemID,
		"listingFee":   out.ListingFee,
		"listingFeeId": out.ListingFeeID,
		"message":      msg,
	})
}

// PUT /v1/items/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	uid, _ := c.Get("user_id").(int64)

	it := itemFromReq(req)
	it.ID = id
	if err := h.Svc.Update(c.Request().Context(), uid, it); err != nil {
		return h.mapError(c, "item update", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Item updated successfully"})
}

// DELETE /v1/items/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, _ := c.Get("user_id").(int64)

	if err := h.Svc.Delete(c.Request().Context(), uid, id); err != nil {
		return h.mapError(c, "item delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Item deleted successfully"})
}

// GET /v1/items/my
func (h *Controller) My(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.My(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("my items", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if rows == nil {
		rows = []model.Item{}
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Controller) bind(c echo.Context) (*ItemReq, error) {
	var req ItemReq
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}
	return &req, nil
}

func itemFromReq(req *ItemReq) *model.Item {
	it := &model.Item{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Location:      req.Location,
		DepositAmount: req.DepositAmount,
		DailyRate:     req.DailyRate,
	}
	if req.ImageURL != "" {
		it.ImageURL = &req.ImageURL
	}
	return it
}

func (h *Controller) mapError(c echo.Context, op string, err error) error {
	switch is.Code(err) {
	case is.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "item not found"})
	case is.ErrNotOwner:
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	case is.ErrHasBookings:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "cannot delete item with active bookings"})
	case is.ErrBadInput:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
	default:
		h.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
