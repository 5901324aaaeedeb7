package shift_mock

import (
	"testing"

	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/setup"
	"github.com/mozzaworks/shift_service/shift_core"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/zeebo/assert"
	"gorm.io/gorm"
)

// Migrate runs the schema migration for the engine models.
func Migrate(db *gorm.DB) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&ledger_core.Account{},
			&ledger_core.Transaction{},
			&shift_core.Shift{},
			&shift_core.ShiftInjection{},
			&shift_core.ShiftExpense{},
			&shift_core.CreditBillEntry{},
			&shift_core.ShiftFlowConfig{},
		)
		assert.Nil(t, err)

		return nil
	}
}

// PopulateLedger seeds the seven role accounts and a complete flow config.
func PopulateLedger(db *gorm.DB) moretest.SetupFunc {
	return func(t *testing.T) func() error {
		cfg, err := shift_core.GetFlowConfig(db)
		assert.Nil(t, err)

		for _, seed := range setup.DefaultSeedAccount() {
			var old ledger_core.Account
			err = db.Model(&ledger_core.Account{}).
				Where("name = ?", seed.Name).
				Find(&old).
				Error
			assert.Nil(t, err)

			if old.ID == 0 {
				acc, err := ledger_core.
					NewCreateAccount(db).
					Create(seed.Name, seed.Type)
				assert.Nil(t, err)

				old = *acc
			}

			seed.Slot(cfg, old.ID)
		}

		err = shift_core.PutFlowConfig(db, cfg)
		assert.Nil(t, err)

		return nil
	}
}
