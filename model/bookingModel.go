// model/booking.go
package model

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingActive    BookingStatus = "active"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

// validNext is the closed booking transition table. rejected and
// completed are terminal.
var validNext = map[BookingStatus]map[BookingStatus]bool{
	BookingPending:   {BookingApproved: true, BookingRejected: true},
	BookingApproved:  {BookingActive: true, BookingCompleted: true},
	BookingActive:    {BookingCompleted: true},
	BookingRejected:  {},
	BookingCompleted: {},
}

func CanTransition(from, to BookingStatus) bool {
	return validNext[from][to]
}

// InProgress reports whether a booking in this status can be returned.
func (s BookingStatus) InProgress() bool {
	return s == BookingApproved || s == BookingActive
}

// Blocking reports whether a booking in this status blocks the item's
// date range for new bookings.
func (s BookingStatus) Blocking() bool {
	return s == BookingPending || s == BookingApproved || s == BookingActive
}

type Booking struct {
	ID            int64         `json:"id"`
	ItemID        int64         `json:"item_id"`
	BorrowerID    int64         `json:"borrower_id"`
	OwnerID       int64         `json:"owner_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	DepositAmount float64       `json:"deposit_amount"`
	Status        BookingStatus `json:"status"`
	LateFee       float64       `json:"late_fee"`
	ReturnedAt    *time.Time    `json:"returned_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`

	// ItemDailyRate is joined from the item row on reads that need the
	// late-fee rate. Not a bookings column.
	ItemDailyRate float64 `json:"-"`
}

type DepositStatus string

const (
	DepositPending  DepositStatus = "pending"
	DepositPaid     DepositStatus = "paid"
	DepositHeld     DepositStatus = "held"
	DepositRefunded DepositStatus = "refunded"
)

type Deposit struct {
	ID         int64         `json:"id"`
	BookingID  int64         `json:"booking_id"`
	Amount     float64       `json:"amount"`
	Status     DepositStatus `json:"status"`
	RefundedAt *time.Time    `json:"refunded_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
