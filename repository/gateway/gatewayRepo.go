package gatewayrepo

import "context"

type ChargeReq struct {
	UserID      int64
	Type        string
	Amount      float64
	Description string
}

type ChargeResult struct {
	Success   bool
	Reference string
	Message   string
}

// Repo is the external payment processor contract. The production
// deployment talks to a hosted gateway over HTTPS; local and test runs
// use the simulated processor, which always succeeds.
type Repo interface {
	Charge(ctx context.Context, req ChargeReq) (*ChargeResult, error)
	Verify(ctx context.Context, reference string) (bool, error)
}
