package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
	bookingrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/booking"
)

// errors used by controllers

type ErrCode string

const (
	ErrItemNotFound    ErrCode = "ITEM_NOT_FOUND"
	ErrBookingNotFound ErrCode = "BOOKING_NOT_FOUND"
	ErrOwnItem         ErrCode = "OWN_ITEM"
	ErrUnavailable     ErrCode = "ITEM_UNAVAILABLE"
	ErrDateConflict    ErrCode = "DATE_CONFLICT"
	ErrNotOwner        ErrCode = "NOT_OWNER"
	ErrNotBorrower     ErrCode = "NOT_BORROWER"
	ErrNotPending      ErrCode = "NOT_PENDING"
	ErrNotActive       ErrCode = "NOT_ACTIVE"
	ErrBadInput        ErrCode = "BAD_INPUT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// notification copy per transition
const (
	msgRequest  = "New rental request for your item"
	msgApproved = "Your rental request has been approved"
	msgRejected = "Your rental request has been rejected"
	msgReturned = "Your item has been returned"
)

// Row = repository shape
type Row = bookingrepo.Row

// ReturnResult is what the borrower gets back on a completed return.
// RefundAmount may go negative when the late fee exceeds the deposit;
// it is reported, not persisted.
type ReturnResult struct {
	LateFee      float64
	RefundAmount float64
}

type Repo interface {
	CreateWithDeposit(ctx context.Context, b *model.Booking, message string) (conflicted bool, err error)
	HasOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error)
	Get(ctx context.Context, id int64) (*model.Booking, error)
	GetDeposit(ctx context.Context, bookingID int64) (*model.Deposit, error)
	Approve(ctx context.Context, bookingID, itemID, borrowerID int64, message string) (bool, error)
	Reject(ctx context.Context, bookingID, borrowerID int64, message string) (bool, error)
	Complete(ctx context.Context, p bookingrepo.CompleteParams) (bool, error)
	ListBorrowed(ctx context.Context, userID int64) ([]Row, error)
	ListLent(ctx context.Context, userID int64) ([]Row, error)
	ListAll(ctx context.Context, userID int64) ([]Row, error)
}

// ItemRepo is the slice of the item repository the state machine needs.
type ItemRepo interface {
	Get(ctx context.Context, id int64) (*model.Item, error)
}

type Service interface {
	// Create requests a booking for a date range; the booking starts
	// out pending with the deposit snapshotted from the item.
	Create(ctx context.Context, borrowerID, itemID int64, start, end time.Time) (*model.Booking, error)

	// Approve/Reject are owner decisions on a pending booking.
	Approve(ctx context.Context, actorID, bookingID int64) error
	Reject(ctx context.Context, actorID, bookingID int64) error

	// Return completes an in-progress booking, computing the late fee
	// and the deposit refund.
	Return(ctx context.Context, actorID, bookingID int64) (*ReturnResult, error)

	// List shows a user's bookings: "borrowed", "lent", or both.
	List(ctx context.Context, userID int64, typ string) ([]Row, error)
}

// ----- Service implementation -----

type service struct {
	r     Repo
	items ItemRepo
	now   func() time.Time
}

func New(r Repo, items ItemRepo) Service {
	return &service{r: r, items: items, now: time.Now}
}

// NewWithClock pins the clock, for late-fee tests.
func NewWithClock(r Repo, items ItemRepo, now func() time.Time) Service {
	return &service{r: r, items: items, now: now}
}

func (s *service) Create(ctx context.Context, borrowerID, itemID int64, start, end time.Time) (*model.Booking, error) {
	if itemID <= 0 || start.IsZero() || end.IsZero() {
		return nil, makeErr(ErrBadInput)
	}
	if end.Before(start) {
		return nil, makeErr(ErrBadInput)
	}

	it, err := s.items.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrItemNotFound)
		}
		return nil, err
	}
	if it.OwnerID == borrowerID {
		return nil, makeErr(ErrOwnItem)
	}
	if !it.Available {
		return nil, makeErr(ErrUnavailable)
	}

	overlap, err := s.r.HasOverlap(ctx, itemID, start, end)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, makeErr(ErrDateConflict)
	}

	b := &model.Booking{
		ItemID:        itemID,
		BorrowerID:    borrowerID,
		OwnerID:       it.OwnerID,
		StartDate:     start,
		EndDate:       end,
		DepositAmount: it.DepositAmount,
		Status:        model.BookingPending,
	}
	// The repository re-checks the overlap inside the insert
	// transaction, so a racing request cannot slip in between the
	// check above and the write.
	conflicted, err := s.r.CreateWithDeposit(ctx, b, msgRequest)
	if err != nil {
		return nil, err
	}
	if conflicted {
		return nil, makeErr(ErrDateConflict)
	}
	return b, nil
}

func (s *service) Approve(ctx context.Context, actorID, bookingID int64) error {
	b, err := s.get(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.OwnerID != actorID {
		return makeErr(ErrNotOwner)
	}
	if !model.CanTransition(b.Status, model.BookingApproved) {
		return makeErr(ErrNotPending)
	}

	ok, err := s.r.Approve(ctx, bookingID, b.ItemID, b.BorrowerID, msgApproved)
	if err != nil {
		return err
	}
	if !ok {
		// Lost the race to a concurrent decision.
		return makeErr(ErrNotPending)
	}
	return nil
}

func (s *service) Reject(ctx context.Context, actorID, bookingID int64) error {
	b, err := s.get(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.OwnerID != actorID {
		return makeErr(ErrNotOwner)
	}
	if !model.CanTransition(b.Status, model.BookingRejected) {
		return makeErr(ErrNotPending)
	}

	ok, err := s.r.Reject(ctx, bookingID, b.BorrowerID, msgRejected)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotPending)
	}
	return nil
}

func (s *service) Return(ctx context.Context, actorID, bookingID int64) (*ReturnResult, error) {
	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BorrowerID != actorID {
		return nil, makeErr(ErrNotBorrower)
	}
	if !model.CanTransition(b.Status, model.BookingCompleted) {
		return nil, makeErr(ErrNotActive)
	}

	dep, err := s.r.GetDeposit(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	lateFee := LateFee(b.EndDate, b.ItemDailyRate, s.now())
	ok, err := s.r.Complete(ctx, bookingrepo.CompleteParams{
		BookingID: bookingID,
		ItemID:    b.ItemID,
		OwnerID:   b.OwnerID,
		LateFee:   lateFee,
		Message:   msgReturned,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrNotActive)
	}

	return &ReturnResult{
		LateFee:      lateFee,
		RefundAmount: dep.Amount - lateFee,
	}, nil
}

func (s *service) List(ctx context.Context, userID int64, typ string) ([]Row, error) {
	switch typ {
	case "borrowed":
		return s.r.ListBorrowed(ctx, userID)
	case "lent":
		return s.r.ListLent(ctx, userID)
	default:
		return s.r.ListAll(ctx, userID)
	}
}

func (s *service) get(ctx context.Context, bookingID int64) (*model.Booking, error) {
	b, err := s.r.Get(ctx, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrBookingNotFound)
		}
		return nil, err
	}
	return b, nil
}
