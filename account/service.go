package account

import (
	"context"

	"github.com/mozzaworks/shift_service/ledger_core"
	"gorm.io/gorm"
)

type AccountService interface {
	AccountCreate(ctx context.Context, payload *AccountCreatePayload) (*ledger_core.Account, error)
	AccountList(ctx context.Context) ([]*ledger_core.Account, error)
	AccountAudit(ctx context.Context, accountID uint) error
}

type accountServiceImpl struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) AccountService {
	return &accountServiceImpl{
		db: db,
	}
}
