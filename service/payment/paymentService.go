package paymentsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
	gatewayrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/gateway"
	walletrepo "github.com/mustafidulibadahmad-commits/komunitas-berbagi/repository/wallet"
)

type ErrCode string

const (
	ErrBadType   ErrCode = "BAD_TYPE"
	ErrBadAmount ErrCode = "BAD_AMOUNT"
	ErrDeclined  ErrCode = "DECLINED"
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

// RecordReq is one payment to run through the processor and record.
type RecordReq struct {
	UserID        int64
	Type          model.TransactionType
	Amount        float64
	Description   string
	RelatedID     *int64
	PaymentMethod string
}

// Recorded is returned to the caller after a successful payment.
type Recorded struct {
	TransactionID int64
	Reference     string
}

type Repo interface {
	Record(ctx context.Context, p walletrepo.RecordParams) (txID int64, adjusted bool, err error)
	Balance(ctx context.Context, userID int64) (float64, error)
	ListTransactions(ctx context.Context, userID int64, typ string, limit int) ([]model.Transaction, error)
}

type Service interface {
	// Record charges the processor, appends the ledger row and applies
	// the wallet adjustment for one payment.
	Record(ctx context.Context, req RecordReq) (*Recorded, error)

	// Wallet reads the balance, creating the wallet at zero on first
	// touch.
	Wallet(ctx context.Context, userID int64) (float64, error)

	// Transactions lists the user's ledger entries, newest first.
	Transactions(ctx context.Context, userID int64, typ string, limit int) ([]model.Transaction, error)
}

const defaultTxLimit = 50

type service struct {
	r Repo
	g gatewayrepo.Repo
}

func New(r Repo, g gatewayrepo.Repo) Service { return &service{r: r, g: g} }

func (s *service) Record(ctx context.Context, req RecordReq) (*Recorded, error) {
	if !model.ValidTransactionType(req.Type) {
		return nil, makeErr(ErrBadType)
	}
	if req.Amount <= 0 {
		return nil, makeErr(ErrBadAmount)
	}

	desc := req.Description
	if desc == "" {
		desc = fmt.Sprintf("Payment for %s", req.Type)
	}

	// Process boundary hop: the gateway call happens before the local
	// write, like any hosted-processor integration would.
	res, err := s.g.Charge(ctx, gatewayrepo.ChargeReq{
		UserID:      req.UserID,
		Type:        string(req.Type),
		Amount:      req.Amount,
		Description: desc,
	})
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, makeErr(ErrDeclined)
	}

	method := req.PaymentMethod
	if method == "" {
		method = "simulated"
	}

	txID, _, err := s.r.Record(ctx, walletrepo.RecordParams{
		Tx: model.Transaction{
			UserID:           req.UserID,
			Type:             req.Type,
			Amount:           req.Amount,
			Description:      desc,
			Status:           model.PaymentCompleted,
			PaymentMethod:    method,
			PaymentReference: res.Reference,
			RelatedID:        req.RelatedID,
		},
		Credit:             req.Type.Credits(),
		MarkListingFeePaid: req.Type == model.TxListingFee && req.RelatedID != nil,
		MarkDepositPaid:    req.Type == model.TxDeposit && req.RelatedID != nil,
	})
	if err != nil {
		return nil, err
	}

	return &Recorded{TransactionID: txID, Reference: res.Reference}, nil
}

func (s *service) Wallet(ctx context.Context, userID int64) (float64, error) {
	return s.r.Balance(ctx, userID)
}

func (s *service) Transactions(ctx context.Context, userID int64, typ string, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = defaultTxLimit
	}
	return s.r.ListTransactions(ctx, userID, typ, limit)
}
