package ledger

import (
	"context"

	"github.com/mozzaworks/shift_service/ledger_core"
)

type TransactionListPayload struct {
	AccountID uint `json:"account_id,omitempty"`
	ShiftID   uint `json:"shift_id,omitempty"`
	Limit     int  `json:"limit,omitempty"`
}

// TransactionList implements LedgerService.
func (l *ledgerServiceImpl) TransactionList(ctx context.Context, payload *TransactionListPayload) (ledger_core.TransactionList, error) {
	trans := ledger_core.TransactionList{}

	query := l.db.WithContext(ctx).
		Model(&ledger_core.Transaction{}).
		Order("date desc, id desc")

	if payload.AccountID != 0 {
		query = query.Where("account_id = ?", payload.AccountID)
	}

	if payload.ShiftID != 0 {
		query = query.Where("shift_id = ?", payload.ShiftID)
	}

	if payload.Limit > 0 {
		query = query.Limit(payload.Limit)
	}

	err := query.Find(&trans).Error
	if err != nil {
		return trans, err
	}

	return trans, nil
}
