package item

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
	is "github.com/mustafidulibadahmad-commits/komunitas-berbagi/service/item"
)

type svcMock struct {
	createFn func(ctx context.Context, it *model.Item) (*is.Created, error)
	detailFn func(ctx context.Context, id int64) (*is.Detail, error)
	listFn   func(ctx context.Context, category, search string) ([]is.ListRow, error)
	myFn     func(ctx context.Context, ownerID int64) ([]model.Item, error)
	updateFn func(ctx context.Context, actorID int64, it *model.Item) error
	deleteFn func(ctx context.Context, actorID, id int64) error
}

var _ is.Service = (*svcMock)(nil)

func (m *svcMock) Create(ctx context.Context, it *model.Item) (*is.Created, error) {
	return m.createFn(ctx, it)
}
func (m *svcMock) Detail(ctx context.Context, id int64) (*is.Detail, error) {
	return m.detailFn(ctx, id)
}
func (m *svcMock) List(ctx context.Context, category, search string) ([]is.ListRow, error) {
	return m.listFn(ctx, category, search)
}
func (m *svcMock) My(ctx context.Context, ownerID int64) ([]model.Item, error) {
	return m.myFn(ctx, ownerID)
}
func (m *svcMock) Update(ctx context.Context, actorID int64, it *model.Item) error {
	return m.updateFn(ctx, actorID, it)
}
func (m *svcMock) Delete(ctx context.Context, actorID, id int64) error {
	return m.deleteFn(ctx, actorID, id)
}

func newController(svc is.Service) *Controller {
	return &Controller{
		Svc: svc,
		V:   validator.New(),
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func postItems(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("user_id", int64(7))
	return c
}

func TestCreate_ValidationFailureStopsHandler(t *testing.T) {
	invoked := false
	h := newController(&svcMock{
		createFn: func(ctx context.Context, it *model.Item) (*is.Created, error) {
			invoked = true
			return &is.Created{ItemID: 1}, nil
		},
	})

	err := h.Create(postItems(`{"name":""}`))

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
	require.False(t, invoked, "service must not run after a failed validation")
}

func TestCreate_MalformedJSONStopsHandler(t *testing.T) {
	invoked := false
	h := newController(&svcMock{
		createFn: func(ctx context.Context, it *model.Item) (*is.Created, error) {
			invoked = true
			return &is.Created{ItemID: 1}, nil
		},
	})

	err := h.Create(postItems(`{"name":`))

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
	require.False(t, invoked)
}

func TestCreate_Success(t *testing.T) {
	var got *model.Item
	h := newController(&svcMock{
		createFn: func(ctx context.Context, it *model.Item) (*is.Created, error) {
			got = it
			return &is.Created{ItemID: 42}, nil
		},
	})

	err := h.Create(postItems(`{
		"name": "Tenda dome 4 orang",
		"description": "Waterproof camping tent",
		"category": "Outdoor",
		"location": "Bandung",
		"deposit_amount": 50000,
		"daily_rate": 10000
	}`))

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, int64(7), got.OwnerID)
	require.Equal(t, "Tenda dome 4 orang", got.Name)
}

func TestUpdate_ValidationFailureStopsHandler(t *testing.T) {
	invoked := false
	h := newController(&svcMock{
		updateFn: func(ctx context.Context, actorID int64, it *model.Item) error {
			invoked = true
			return nil
		},
	})

	c := postItems(`{"name":""}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	err := h.Update(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
	require.False(t, invoked)
}
