package ledger_core

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// LedgerManage collects every posting made inside one ledger unit so the
// wrapper can verify all of them were durably saved before commit.
type LedgerManage interface {
	NewPost() PostTransaction
	Postings() TransactionList
}

type ledgerManageImpl struct {
	tx       *gorm.DB
	postings TransactionList
}

// NewPost implements LedgerManage.
func (l *ledgerManageImpl) NewPost() PostTransaction {
	return &postTransactionImpl{
		tx:          l.tx,
		afterCommit: l.afterCommit,
	}
}

// Postings implements LedgerManage.
func (l *ledgerManageImpl) Postings() TransactionList {
	return l.postings
}

func (l *ledgerManageImpl) afterCommit(p *postTransactionImpl) error {
	l.postings = append(l.postings, p.tran)
	return nil
}

// OpenLedger runs handle inside one database transaction. Either every
// posting made through the book is durable or none is; a failure partway
// through rolls the whole unit back.
func OpenLedger(ctx context.Context, db *gorm.DB, handle func(tx *gorm.DB, book LedgerManage) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		book := ledgerManageImpl{
			tx: tx,
		}

		err := handle(tx, &book)
		if err != nil {
			return err
		}

		for _, tran := range book.postings {
			if tran.ID == 0 {
				return fmt.Errorf("theres posting not saved desc %s", tran.Desc)
			}
		}

		return nil
	})
}

// CheckBalance verifies the stored balance equals the sum of every posting
// against the account.
func CheckBalance(db *gorm.DB, accountID uint) error {
	var acc Account
	err := db.Model(&Account{}).
		Where("id = ?", accountID).
		Find(&acc).
		Error

	if err != nil {
		return err
	}

	if acc.ID == 0 {
		return &ErrAccountNotFound{AccountID: accountID}
	}

	trmut := NewTransactionMutation(db).ByAccountID(accountID)
	if trmut.Err() != nil {
		return trmut.Err()
	}

	posted := trmut.Data().Total()
	if RoundUp(posted, Precision) != RoundUp(acc.Balance, Precision) {
		return &ErrBalanceInvalid{
			AccountID: accountID,
			Balance:   acc.Balance,
			PostedSum: posted,
			List:      trmut.Data(),
			Precision: Precision,
		}
	}

	return nil
}
