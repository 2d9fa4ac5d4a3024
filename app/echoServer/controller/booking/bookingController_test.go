package booking

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
	bs "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/booking"
)

type svcMock struct {
	createFn  func(ctx context.Context, borrowerID, itemID int64, start, end time.Time) (*model.Booking, error)
	approveFn func(ctx context.Context, actorID, bookingID int64) error
	rejectFn  func(ctx context.Context, actorID, bookingID int64) error
	returnFn  func(ctx context.Context, actorID, bookingID int64) (*bs.ReturnResult, error)
	listFn    func(ctx context.Context, userID int64, typ string) ([]bs.Row, error)
}

var _ bs.Service = (*svcMock)(nil)

func (m *svcMock) Create(ctx context.Context, borrowerID, itemID int64, start, end time.Time) (*model.Booking, error) {
	return m.createFn(ctx, borrowerID, itemID, start, end)
}
func (m *svcMock) Approve(ctx context.Context, actorID, bookingID int64) error {
	return m.approveFn(ctx, actorID, bookingID)
}
func (m *svcMock) Reject(ctx context.Context, actorID, bookingID int64) error {
	return m.rejectFn(ctx, actorID, bookingID)
}
func (m *svcMock) Return(ctx context.Context, actorID, bookingID int64) (*bs.ReturnResult, error) {
	return m.returnFn(ctx, actorID, bookingID)
}
func (m *svcMock) List(ctx context.Context, userID int64, typ string) ([]bs.Row, error) {
	return m.listFn(ctx, userID, typ)
}

func decisionCtx(rawID string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(rawID)
	c.Set("user_id", int64(5))
	return c
}

func TestDecisionRoutes_InvalidIDStopsHandler(t *testing.T) {
	invoked := false
	h := &Controller{
		Svc: &svcMock{
			approveFn: func(ctx context.Context, actorID, bookingID int64) error {
				invoked = true
				return nil
			},
			rejectFn: func(ctx context.Context, actorID, bookingID int64) error {
				invoked = true
				return nil
			},
			returnFn: func(ctx context.Context, actorID, bookingID int64) (*bs.ReturnResult, error) {
				invoked = true
				return &bs.ReturnResult{}, nil
			},
		},
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	handlers := map[string]func(echo.Context) error{
		"approve": h.Approve,
		"reject":  h.Reject,
		"return":  h.Return,
	}
	for name, fn := range handlers {
		for _, raw := range []string{"abc", "0", "-1"} {
			err := fn(decisionCtx(raw))

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he, "%s id=%q", name, raw)
			require.Equal(t, http.StatusBadRequest, he.Code, "%s id=%q", name, raw)
		}
	}
	require.False(t, invoked, "service must not run for an unparseable id")
}

func TestApprove_ValidIDReachesService(t *testing.T) {
	var gotActor, gotBooking int64
	h := &Controller{
		Svc: &svcMock{
			approveFn: func(ctx context.Context, actorID, bookingID int64) error {
				gotActor, gotBooking = actorID, bookingID
				return nil
			},
		},
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	require.NoError(t, h.Approve(decisionCtx("12")))
	require.Equal(t, int64(5), gotActor)
	require.Equal(t, int64(12), gotBooking)
}
