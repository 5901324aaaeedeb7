package account

import (
	"context"

	"github.com/mozzaworks/shift_service/ledger_core"
)

// AccountList implements AccountService.
func (a *accountServiceImpl) AccountList(ctx context.Context) ([]*ledger_core.Account, error) {
	accounts := []*ledger_core.Account{}

	err := a.db.WithContext(ctx).
		Model(&ledger_core.Account{}).
		Order("created desc").
		Find(&accounts).
		Error

	if err != nil {
		return accounts, err
	}

	return accounts, nil
}

// AccountAudit implements AccountService. Verifies the balance invariant for
// one account.
func (a *accountServiceImpl) AccountAudit(ctx context.Context, accountID uint) error {
	return ledger_core.CheckBalance(a.db.WithContext(ctx), accountID)
}
