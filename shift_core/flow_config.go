package shift_core

import (
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FlowConfigID is the primary key of the singleton config row.
const FlowConfigID uint = 1

// ShiftFlowConfig maps the sweep roles to concrete ledger accounts. Every
// slot must be filled before a shift may close.
type ShiftFlowConfig struct {
	ID                uint `json:"id" gorm:"primarykey"`
	SalesAccountID    uint `json:"sales_account_id"`
	CardsAccountID    uint `json:"cards_account_id"`
	HikingAccountID   uint `json:"hiking_account_id"`
	FxAccountID       uint `json:"fx_account_id"`
	BillsAccountID    uint `json:"bills_account_id"`
	CashAccountID     uint `json:"cash_account_id"`
	VarianceAccountID uint `json:"variance_account_id"`
}

type ErrIncompleteConfig struct {
	Missing []string `json:"missing"`
}

// Error implements error.
func (e *ErrIncompleteConfig) Error() string {
	raw, _ := json.Marshal(e)
	return "shift flow config incomplete" + string(raw)
}

func (cfg *ShiftFlowConfig) slots() []struct {
	Name string
	ID   uint
} {
	return []struct {
		Name string
		ID   uint
	}{
		{"sales_account", cfg.SalesAccountID},
		{"cards_account", cfg.CardsAccountID},
		{"hiking_account", cfg.HikingAccountID},
		{"fx_account", cfg.FxAccountID},
		{"bills_account", cfg.BillsAccountID},
		{"cash_account", cfg.CashAccountID},
		{"variance_account", cfg.VarianceAccountID},
	}
}

func (cfg *ShiftFlowConfig) Validate() error {
	missing := []string{}
	for _, slot := range cfg.slots() {
		if slot.ID == 0 {
			missing = append(missing, slot.Name)
		}
	}

	if len(missing) != 0 {
		return &ErrIncompleteConfig{Missing: missing}
	}

	return nil
}

// AccountIDs lists every configured slot, in sweep role order.
func (cfg *ShiftFlowConfig) AccountIDs() []uint {
	ids := []uint{}
	for _, slot := range cfg.slots() {
		ids = append(ids, slot.ID)
	}
	return ids
}

func GetFlowConfig(tx *gorm.DB) (*ShiftFlowConfig, error) {
	var cfg ShiftFlowConfig
	err := tx.Model(&ShiftFlowConfig{}).
		Where("id = ?", FlowConfigID).
		Find(&cfg).
		Error

	if err != nil {
		return &cfg, err
	}

	cfg.ID = FlowConfigID
	return &cfg, nil
}

func PutFlowConfig(tx *gorm.DB, cfg *ShiftFlowConfig) error {
	cfg.ID = FlowConfigID
	return tx.Clauses(clause.OnConflict{
		UpdateAll: true,
	}).Create(cfg).Error
}
