// model/item.go
package model

import "time"

type Item struct {
	ID            int64     `json:"id"`
	OwnerID       int64     `json:"owner_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Location      string    `json:"location"`
	DepositAmount float64   `json:"deposit_amount"`
	DailyRate     float64   `json:"daily_rate"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListingFeeStatus string

const (
	ListingFeePending ListingFeeStatus = "pending"
	ListingFeePaid    ListingFeeStatus = "paid"
)

// ListingFee is the one-time charge for activating an item listing.
type ListingFee struct {
	ID            int64            `json:"id"`
	ItemID        int64            `json:"item_id"`
	Amount        float64          `json:"amount"`
	Status        ListingFeeStatus `json:"status"`
	TransactionID *int64           `json:"transaction_id,omitempty"`
	PaidAt        *time.Time       `json:"paid_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}
