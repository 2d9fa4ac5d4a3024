// model/notification.go
package model

import "time"

const (
	NotifBookingRequest  = "booking_request"
	NotifBookingApproved = "booking_approved"
	NotifBookingRejected = "booking_rejected"
	NotifItemReturned    = "item_returned"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	RelatedID *int64    `json:"related_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
