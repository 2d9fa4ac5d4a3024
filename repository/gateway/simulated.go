package gatewayrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type simulated struct{}

// NewSimulated returns a processor that approves every charge and hands
// back a generated reference, in the shape `PAY-<unix-ms>-<suffix>`.
func NewSimulated() Repo { return simulated{} }

func (simulated) Charge(_ context.Context, req ChargeReq) (*ChargeResult, error) {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return &ChargeResult{
		Success:   true,
		Reference: fmt.Sprintf("PAY-%d-%s", time.Now().UnixMilli(), suffix),
		Message:   "Payment processed successfully",
	}, nil
}

func (simulated) Verify(_ context.Context, reference string) (bool, error) {
	return reference != "", nil
}
