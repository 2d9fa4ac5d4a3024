package item

// ItemReq represents a listing create/update payload.
// swagger:model ItemReq
type ItemReq struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Category      string  `json:"category" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	DepositAmount float64 `json:"deposit_amount" validate:"gte=0"`
	DailyRate     float64 `json:"daily_rate" validate:"gte=0"`
	ImageURL      string  `json:"image_url"`
}
