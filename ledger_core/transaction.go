package ledger_core

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostTransaction interface {
	Post(tran *Transaction) PostTransaction
	Data() *Transaction
	Err() error
}

type postTransactionImpl struct {
	tx          *gorm.DB
	tran        *Transaction
	err         error
	afterCommit func(p *postTransactionImpl) error
}

// Post implements PostTransaction.
//
// The row append and the balance increment run on the same *gorm.DB handle,
// inside the surrounding ledger unit. A reader can never observe one without
// the other.
func (p *postTransactionImpl) Post(tran *Transaction) PostTransaction {
	var acc Account
	err := p.tx.Model(&Account{}).
		Where("id = ?", tran.AccountID).
		Find(&acc).
		Error

	if err != nil {
		return p.setErr(err)
	}

	if acc.ID == 0 {
		return p.setErr(&ErrAccountNotFound{AccountID: tran.AccountID})
	}

	tran.Created = time.Now()
	err = p.tx.Create(tran).Error
	if err != nil {
		return p.setErr(err)
	}

	err = p.tx.Model(&Account{}).
		Where("id = ?", tran.AccountID).
		UpdateColumn("balance", gorm.Expr("balance + ?", tran.Amount)).
		Error

	if err != nil {
		return p.setErr(err)
	}

	p.tran = tran

	if p.afterCommit != nil {
		err = p.afterCommit(p)
		if err != nil {
			return p.setErr(err)
		}
	}

	return p
}

// Data implements PostTransaction.
func (p *postTransactionImpl) Data() *Transaction {
	return p.tran
}

// Err implements PostTransaction.
func (p *postTransactionImpl) Err() error {
	return p.err
}

func (p *postTransactionImpl) setErr(err error) *postTransactionImpl {
	if p.err != nil {
		return p
	}

	if err != nil {
		p.err = err
	}

	return p
}

func NewPostTransaction(tx *gorm.DB) PostTransaction {
	return &postTransactionImpl{
		tx: tx,
	}
}

type TransactionMutation interface {
	ByShiftID(shiftID uint, lock bool) TransactionMutation
	ByAccountID(accountID uint) TransactionMutation
	IsExist() bool
	Data() TransactionList
	Err() error
}

type transactionMutationImpl struct {
	tx   *gorm.DB
	data TransactionList
	err  error
}

// ByShiftID implements TransactionMutation.
func (t *transactionMutationImpl) ByShiftID(shiftID uint, lock bool) TransactionMutation {
	tx := t.tx

	if lock {
		tx = tx.Clauses(clause.Locking{
			Strength: "UPDATE",
		})
	}

	err := tx.Model(&Transaction{}).
		Where("shift_id = ?", shiftID).
		Order("id asc").
		Find(&t.data).
		Error

	if err != nil {
		return t.setErr(err)
	}
	return t
}

// ByAccountID implements TransactionMutation.
func (t *transactionMutationImpl) ByAccountID(accountID uint) TransactionMutation {
	err := t.tx.Model(&Transaction{}).
		Where("account_id = ?", accountID).
		Order("id asc").
		Find(&t.data).
		Error

	if err != nil {
		return t.setErr(err)
	}
	return t
}

// IsExist implements TransactionMutation.
func (t *transactionMutationImpl) IsExist() bool {
	return len(t.data) != 0
}

// Data implements TransactionMutation.
func (t *transactionMutationImpl) Data() TransactionList {
	return t.data
}

// Err implements TransactionMutation.
func (t *transactionMutationImpl) Err() error {
	return t.err
}

func (t *transactionMutationImpl) setErr(err error) *transactionMutationImpl {
	if t.err != nil {
		return t
	}

	if err != nil {
		t.err = err
	}

	return t
}

func NewTransactionMutation(tx *gorm.DB) TransactionMutation {
	return &transactionMutationImpl{
		tx: tx,
	}
}
