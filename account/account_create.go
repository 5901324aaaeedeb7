package account

import (
	"context"

	"github.com/mozzaworks/shift_service/ledger_core"
	"gorm.io/gorm"
)

type AccountCreatePayload struct {
	Name string                  `json:"name"`
	Type ledger_core.AccountType `json:"type"`
}

// AccountCreate implements AccountService.
func (a *accountServiceImpl) AccountCreate(ctx context.Context, payload *AccountCreatePayload) (*ledger_core.Account, error) {
	var acc *ledger_core.Account

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		acc, err = ledger_core.
			NewCreateAccount(tx).
			Create(payload.Name, payload.Type)

		return err
	})

	if err != nil {
		return nil, err
	}

	return acc, nil
}
