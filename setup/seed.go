package setup

import (
	"context"

	"github.com/mozzaworks/shift_service/customer"
	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/shift_core"
	"gorm.io/gorm"
)

type SeedAccount struct {
	Name string
	Type ledger_core.AccountType
	Slot func(cfg *shift_core.ShiftFlowConfig, accID uint)
}

// DefaultSeedAccount lists the conventional account for every sweep role.
func DefaultSeedAccount() []*SeedAccount {
	return []*SeedAccount{
		{
			Name: "Main Sales Income",
			Type: ledger_core.IncomeType,
			Slot: func(cfg *shift_core.ShiftFlowConfig, accID uint) { cfg.SalesAccountID = accID },
		},
		{
			Name: "Business Bank",
			Type: ledger_core.BankType,
			Slot: func(cfg *shift_core.ShiftFlowConfig, accID uint) { cfg.CardsAccountID = accID },
		},
		{
			Name: "Hiking Bar Receivable",
			Type: ledger_core.ReceivableType,
			Slot: func(cfg *shift_core.ShiftFlowConfig, accID uint) { cfg.HikingAccountID = accID },
		},
		{
			Name: "FX Reserve",
			Type: ledger_core.AssetType,
			Slot: func(cfg *shift_core.ShiftFlowConfig, accID uint) { cfg.FxAccountID = accID },
		},
		{
			Name: "Bills to Receive",
			Type: ledger_core.ReceivableType,
			Slot: func(cfg *shift_core.ShiftFlowConfig, accID uint) { cfg.BillsAccountID = accID },
		},
		{
			Name: "Main Cash Till",
			Type: ledger_core.CashType,
			Slot: func(cfg *shift_core.ShiftFlowConfig, accID uint) { cfg.CashAccountID = accID },
		},
		{
			Name: "Shift Variance",
			Type: ledger_core.EquityType,
			Slot: func(cfg *shift_core.ShiftFlowConfig, accID uint) { cfg.VarianceAccountID = accID },
		},
	}
}

func defaultSeedCustomers() []*customer.Customer {
	return []*customer.Customer{
		{Name: "Regular Guest"},
		{Name: "VIP Table 5"},
	}
}

// Seed implements SetupService. Creates the missing role accounts, points
// the flow config at them and seeds the customer roster. Idempotent.
func (s *setupServiceImpl) Seed(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cfg, err := shift_core.GetFlowConfig(tx)
		if err != nil {
			return err
		}

		for _, seed := range DefaultSeedAccount() {
			var old ledger_core.Account
			err = tx.Model(&ledger_core.Account{}).
				Where("name = ?", seed.Name).
				Find(&old).
				Error

			if err != nil {
				return err
			}

			if old.ID == 0 {
				acc, err := ledger_core.
					NewCreateAccount(tx).
					Create(seed.Name, seed.Type)

				if err != nil {
					return err
				}

				old = *acc
			}

			seed.Slot(cfg, old.ID)
		}

		err = shift_core.PutFlowConfig(tx, cfg)
		if err != nil {
			return err
		}

		for _, cust := range defaultSeedCustomers() {
			var old customer.Customer
			err = tx.Model(&customer.Customer{}).
				Where("name = ?", cust.Name).
				Find(&old).
				Error

			if err != nil {
				return err
			}

			if old.ID != 0 {
				continue
			}

			err = tx.Create(cust).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
