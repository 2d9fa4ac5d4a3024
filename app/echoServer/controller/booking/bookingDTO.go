package booking

// CreateBookingReq represents a rental request payload. Dates are
// calendar days, `2006-01-02`.
// swagger:model CreateBookingReq
type CreateBookingReq struct {
	ItemID    int64  `json:"itemId" validate:"required,gt=0"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}
