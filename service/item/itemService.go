package itemsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
	itemrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/item"
)

type ErrCode string

const (
	ErrNotFound    ErrCode = "NOT_FOUND"
	ErrNotOwner    ErrCode = "NOT_OWNER"
	ErrHasBookings ErrCode = "HAS_BOOKINGS"
	ErrBadInput    ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Detail = itemrepo.Detail
type ListRow = itemrepo.ListRow

// Created reports the new listing plus its fee, when one is owed.
type Created struct {
	ItemID       int64
	ListingFee   float64
	ListingFeeID *int64
}

type Repo interface {
	CreateWithFee(ctx context.Context, it *model.Item, fee float64) (feeID *int64, err error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	GetDetail(ctx context.Context, id int64) (*Detail, error)
	List(ctx context.Context, category, search string) ([]ListRow, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	Update(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id int64) error
	HasBlockingBooking(ctx context.Context, itemID int64) (bool, error)
}

type Service interface {
	Create(ctx context.Context, it *model.Item) (*Created, error)
	Detail(ctx context.Context, id int64) (*Detail, error)
	List(ctx context.Context, category, search string) ([]ListRow, error)
	My(ctx context.Context, ownerID int64) ([]model.Item, error)
	Update(ctx context.Context, actorID int64, it *model.Item) error
	Delete(ctx context.Context, actorID, id int64) error
}

type service struct {
	r          Repo
	listingFee float64
}

// New builds the catalog service; listingFee is the configured one-time
// activation charge, zero to disable.
func New(r Repo, listingFee float64) Service {
	return &service{r: r, listingFee: listingFee}
}

func (s *service) Create(ctx context.Context, it *model.Item) (*Created, error) {
	if it.Name == "" || it.Description == "" || it.Category == "" || it.Location == "" {
		return nil, makeErr(ErrBadInput)
	}
	if it.DepositAmount < 0 || it.DailyRate < 0 {
		return nil, makeErr(ErrBadInput)
	}

	feeID, err := s.r.CreateWithFee(ctx, it, s.listingFee)
	if err != nil {
		return nil, err
	}
	out := &Created{ItemID: it.ID, ListingFeeID: feeID}
	if feeID != nil {
		out.ListingFee = s.listingFee
	}
	return out, nil
}

func (s *service) Detail(ctx context.Context, id int64) (*Detail, error) {
	d, err := s.r.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

func (s *service) List(ctx context.Context, category, search string) ([]ListRow, error) {
	return s.r.List(ctx, category, search)
}

func (s *service) My(ctx context.Context, ownerID int64) ([]model.Item, error) {
	return s.r.ListByOwner(ctx, ownerID)
}

func (s *service) Update(ctx context.Context, actorID int64, it *model.Item) error {
	cur, err := s.owned(ctx, actorID, it.ID)
	if err != nil {
		return err
	}
	it.OwnerID = cur.OwnerID
	return s.r.Update(ctx, it)
}

func (s *service) Delete(ctx context.Context, actorID, id int64) error {
	if _, err := s.owned(ctx, actorID, id); err != nil {
		return err
	}
	blocked, err := s.r.HasBlockingBooking(ctx, id)
	if err != nil {
		return err
	}
	if blocked {
		return makeErr(ErrHasBookings)
	}
	return s.r.Delete(ctx, id)
}

func (s *service) owned(ctx context.Context, actorID, id int64) (*model.Item, error) {
	it, err := s.r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if it.OwnerID != actorID {
		return nil, makeErr(ErrNotOwner)
	}
	return it, nil
}
