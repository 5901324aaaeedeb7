package setup

import (
	"context"

	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/shift_core"
	"gorm.io/gorm"
)

type SetupService interface {
	FlowConfigGet(ctx context.Context) (*shift_core.ShiftFlowConfig, error)
	FlowConfigSet(ctx context.Context, cfg *shift_core.ShiftFlowConfig) error
	Seed(ctx context.Context) error
}

type setupServiceImpl struct {
	db *gorm.DB
}

// FlowConfigGet implements SetupService.
func (s *setupServiceImpl) FlowConfigGet(ctx context.Context) (*shift_core.ShiftFlowConfig, error) {
	return shift_core.GetFlowConfig(s.db.WithContext(ctx))
}

// FlowConfigSet implements SetupService. Every filled slot must resolve to
// an existing account.
func (s *setupServiceImpl) FlowConfigSet(ctx context.Context, cfg *shift_core.ShiftFlowConfig) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, accID := range cfg.AccountIDs() {
			if accID == 0 {
				continue
			}

			var acc ledger_core.Account
			err := tx.Model(&ledger_core.Account{}).
				Where("id = ?", accID).
				Find(&acc).
				Error

			if err != nil {
				return err
			}

			if acc.ID == 0 {
				return &ledger_core.ErrAccountNotFound{AccountID: accID}
			}
		}

		return shift_core.PutFlowConfig(tx, cfg)
	})
}

func NewSetupService(db *gorm.DB) SetupService {
	return &setupServiceImpl{
		db: db,
	}
}
