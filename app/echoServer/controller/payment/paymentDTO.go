package payment

// CreatePaymentReq represents a payment to run through the processor.
// swagger:model CreatePaymentReq
type CreatePaymentReq struct {
	Type          string  `json:"type" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Description   string  `json:"description"`
	RelatedID     *int64  `json:"relatedId"`
	PaymentMethod string  `json:"paymentMethod"`
}
