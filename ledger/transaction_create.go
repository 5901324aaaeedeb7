package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mozzaworks/shift_service/ledger_core"
	"gorm.io/gorm"
)

type TransactionCreatePayload struct {
	AccountID uint      `json:"account_id"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Desc      string    `json:"desc"`
	Date      time.Time `json:"date"`
}

// TransactionCreate implements LedgerService. Manual single entry; the
// amount is signed, positive increases the account.
func (l *ledgerServiceImpl) TransactionCreate(ctx context.Context, payload *TransactionCreatePayload) (*ledger_core.Transaction, error) {
	date := payload.Date
	if date.IsZero() {
		date = time.Now()
	}

	tran := ledger_core.Transaction{
		RefID:     ledger_core.NewManualRefID(uuid.NewString()),
		AccountID: payload.AccountID,
		Amount:    payload.Amount,
		Category:  payload.Category,
		Desc:      payload.Desc,
		Date:      date,
	}

	err := ledger_core.OpenLedger(ctx, l.db, func(tx *gorm.DB, book ledger_core.LedgerManage) error {
		return book.
			NewPost().
			Post(&tran).
			Err()
	})

	if err != nil {
		return nil, err
	}

	return &tran, nil
}
