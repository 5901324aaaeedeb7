package ledger

import (
	"context"

	"github.com/mozzaworks/shift_service/ledger_core"
	"gorm.io/gorm"
)

type LedgerService interface {
	TransactionCreate(ctx context.Context, payload *TransactionCreatePayload) (*ledger_core.Transaction, error)
	TransactionList(ctx context.Context, payload *TransactionListPayload) (ledger_core.TransactionList, error)
}

type ledgerServiceImpl struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) LedgerService {
	return &ledgerServiceImpl{
		db: db,
	}
}
