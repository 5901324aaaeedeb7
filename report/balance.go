package report

import (
	"context"

	"github.com/mozzaworks/shift_service/ledger_core"
	"gorm.io/gorm"
)

type BalanceRequest struct {
	Types []ledger_core.AccountType `json:"types,omitempty"`
}

type AccountBalanceItem struct {
	AccountID uint                    `json:"account_id"`
	Name      string                  `json:"name"`
	Type      ledger_core.AccountType `json:"type"`
	Balance   float64                 `json:"balance"`
}

// Balance implements ReportService.
func (r *reportServiceImpl) Balance(ctx context.Context, payload *BalanceRequest) ([]*AccountBalanceItem, error) {
	result := []*AccountBalanceItem{}

	db := r.db.WithContext(ctx)
	view := NewBalanceView(db, payload)
	err := view.Iterate(func(d *AccountBalanceItem) error {
		result = append(result, d)
		return nil
	})

	return result, err
}

type BalanceView interface {
	Iterate(handle func(d *AccountBalanceItem) error) error
}

type balanceViewImpl struct {
	db  *gorm.DB
	pay *BalanceRequest
}

// Iterate implements BalanceView.
func (b *balanceViewImpl) Iterate(handle func(d *AccountBalanceItem) error) error {
	query := b.baseQuery()
	rows, err := query.Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d AccountBalanceItem
		err = b.db.ScanRows(rows, &d)
		if err != nil {
			return err
		}

		err = handle(&d)
		if err != nil {
			return err
		}
	}

	return nil
}

func (b *balanceViewImpl) baseQuery() *gorm.DB {
	query := b.
		db.
		Table("accounts").
		Select([]string{
			"accounts.id as account_id",
			"accounts.name",
			"accounts.type",
			"accounts.balance",
		}).
		Order("accounts.type asc, accounts.name asc")

	if len(b.pay.Types) != 0 {
		query = query.Where("accounts.type in ?", b.pay.Types)
	}

	return query
}

func NewBalanceView(db *gorm.DB, pay *BalanceRequest) BalanceView {
	return &balanceViewImpl{
		db:  db,
		pay: pay,
	}
}

type BalanceDetailRequest struct {
	AccountID uint `json:"account_id"`
	Limit     int  `json:"limit,omitempty"`
}

type BalanceDetailResult struct {
	Account      *ledger_core.Account       `json:"account"`
	Transactions ledger_core.TransactionList `json:"transactions"`
}

// BalanceDetail implements ReportService.
func (r *reportServiceImpl) BalanceDetail(ctx context.Context, payload *BalanceDetailRequest) (*BalanceDetailResult, error) {
	acc, err := r.getAccount(ctx, payload.AccountID)
	if err != nil {
		return nil, err
	}

	result := BalanceDetailResult{
		Account:      acc,
		Transactions: ledger_core.TransactionList{},
	}

	limit := payload.Limit
	if limit <= 0 {
		limit = 50
	}

	err = r.db.WithContext(ctx).
		Model(&ledger_core.Transaction{}).
		Where("account_id = ?", payload.AccountID).
		Order("date desc, id desc").
		Limit(limit).
		Find(&result.Transactions).
		Error

	if err != nil {
		return nil, err
	}

	return &result, nil
}
