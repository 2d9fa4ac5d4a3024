package itemsvc

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
)

type repoMock struct {
	createFn   func(ctx context.Context, it *model.Item, fee float64) (*int64, error)
	getFn      func(ctx context.Context, id int64) (*model.Item, error)
	detailFn   func(ctx context.Context, id int64) (*Detail, error)
	listFn     func(ctx context.Context, category, search string) ([]ListRow, error)
	byOwnerFn  func(ctx context.Context, ownerID int64) ([]model.Item, error)
	updateFn   func(ctx context.Context, it *model.Item) error
	deleteFn   func(ctx context.Context, id int64) error
	blockingFn func(ctx context.Context, itemID int64) (bool, error)
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) CreateWithFee(ctx context.Context, it *model.Item, fee float64) (*int64, error) {
	return m.createFn(ctx, it, fee)
}
func (m *repoMock) Get(ctx context.Context, id int64) (*model.Item, error) { return m.getFn(ctx, id) }
func (m *repoMock) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	return m.detailFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context, category, search string) ([]ListRow, error) {
	return m.listFn(ctx, category, search)
}
func (m *repoMock) ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error) {
	return m.byOwnerFn(ctx, ownerID)
}
func (m *repoMock) Update(ctx context.Context, it *model.Item) error { return m.updateFn(ctx, it) }
func (m *repoMock) Delete(ctx context.Context, id int64) error       { return m.deleteFn(ctx, id) }
func (m *repoMock) HasBlockingBooking(ctx context.Context, itemID int64) (bool, error) {
	return m.blockingFn(ctx, itemID)
}

func validItem(ownerID int64) *model.Item {
	return &model.Item{
		OwnerID:       ownerID,
		Name:          "Tenda dome 4 orang",
		Description:   "Waterproof camping tent",
		Category:      "Outdoor",
		Location:      "Bandung",
		DepositAmount: 50000,
		DailyRate:     10000,
	}
}

func TestCreate_Validation(t *testing.T) {
	s := New(&repoMock{}, 0)
	ctx := context.Background()

	bad := validItem(1)
	bad.Name = ""
	_, err := s.Create(ctx, bad)
	require.Equal(t, ErrBadInput, Code(err))

	bad = validItem(1)
	bad.DailyRate = -1
	_, err = s.Create(ctx, bad)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestCreate_WithListingFee(t *testing.T) {
	m := &repoMock{createFn: func(ctx context.Context, it *model.Item, fee float64) (*int64, error) {
		require.Equal(t, float64(2500), fee)
		it.ID = 7
		feeID := int64(11)
		return &feeID, nil
	}}
	s := New(m, 2500)

	out, err := s.Create(context.Background(), validItem(1))
	require.NoError(t, err)
	require.Equal(t, int64(7), out.ItemID)
	require.Equal(t, float64(2500), out.ListingFee)
	require.NotNil(t, out.ListingFeeID)
	require.Equal(t, int64(11), *out.ListingFeeID)
}

func TestCreate_NoFeeConfigured(t *testing.T) {
	m := &repoMock{createFn: func(ctx context.Context, it *model.Item, fee float64) (*int64, error) {
		require.Zero(t, fee)
		it.ID = 7
		return nil, nil
	}}
	s := New(m, 0)

	out, err := s.Create(context.Background(), validItem(1))
	require.NoError(t, err)
	require.Nil(t, out.ListingFeeID)
	require.Zero(t, out.ListingFee)
}

func TestDetail_NotFound(t *testing.T) {
	m := &repoMock{detailFn: func(ctx context.Context, id int64) (*Detail, error) {
		return nil, sql.ErrNoRows
	}}
	s := New(m, 0)
	_, err := s.Detail(context.Background(), 99)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestUpdate_NotOwner(t *testing.T) {
	m := &repoMock{getFn: func(ctx context.Context, id int64) (*model.Item, error) {
		it := validItem(2)
		it.ID = id
		return it, nil
	}}
	s := New(m, 0)

	it := validItem(1)
	it.ID = 7
	require.Equal(t, ErrNotOwner, Code(s.Update(context.Background(), 1, it)))
}

func TestDelete_BlockedByBookings(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*model.Item, error) {
			it := validItem(1)
			it.ID = id
			return it, nil
		},
		blockingFn: func(ctx context.Context, itemID int64) (bool, error) { return true, nil },
	}
	s := New(m, 0)
	require.Equal(t, ErrHasBookings, Code(s.Delete(context.Background(), 1, 7)))
}

func TestDelete_Success(t *testing.T) {
	deleted := false
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*model.Item, error) {
			it := validItem(1)
			it.ID = id
			return it, nil
		},
		blockingFn: func(ctx context.Context, itemID int64) (bool, error) { return false, nil },
		deleteFn:   func(ctx context.Context, id int64) error { deleted = true; return nil },
	}
	s := New(m, 0)
	require.NoError(t, s.Delete(context.Background(), 1, 7))
	require.True(t, deleted)
}
