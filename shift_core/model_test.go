package shift_core_test

import (
	"testing"

	"github.com/mozzaworks/shift_service/shift_core"
	"github.com/stretchr/testify/assert"
)

func TestRecomputeExpectedCash(t *testing.T) {
	shift := shift_core.Shift{
		OpeningFloat: 100,
		TotalSales:   1000,
		Cards:        300,
		Expenses: shift_core.ExpenseList{
			{Amount: 50},
		},
	}

	shift.RecomputeExpectedCash()
	assert.Equal(t, float64(750), shift.ExpectedCash)

	t.Run("not cumulative", func(t *testing.T) {
		shift.RecomputeExpectedCash()
		shift.RecomputeExpectedCash()
		assert.Equal(t, float64(750), shift.ExpectedCash)
	})

	t.Run("every component participates", func(t *testing.T) {
		shift := shift_core.Shift{
			OpeningFloat: 200,
			TotalSales:   1500,
			Cards:        400,
			HikingBar:    100,
			Fx:           shift_core.ForeignCurrency{Value: 80},
			CreditBills: shift_core.CreditBillList{
				{Amount: 120},
			},
			Injections: shift_core.InjectionList{
				{Amount: 40},
				{Amount: 10},
			},
			Expenses: shift_core.ExpenseList{
				{Amount: 30},
				{Amount: 20},
			},
		}

		shift.RecomputeExpectedCash()

		// 200 + (1500 - 400 - 100 - 80 - 120) + 50 - 50
		assert.Equal(t, float64(1000), shift.ExpectedCash)
		assert.Equal(t, float64(800), shift.CashSales())
	})
}

func TestFlowConfigValidate(t *testing.T) {
	cfg := shift_core.ShiftFlowConfig{}

	err := cfg.Validate()
	var incomplete *shift_core.ErrIncompleteConfig
	assert.ErrorAs(t, err, &incomplete)
	assert.Len(t, incomplete.Missing, 7)

	cfg = shift_core.ShiftFlowConfig{
		SalesAccountID:  1,
		CardsAccountID:  2,
		HikingAccountID: 3,
		FxAccountID:     4,
		BillsAccountID:  5,
		CashAccountID:   6,
	}

	err = cfg.Validate()
	assert.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{"variance_account"}, incomplete.Missing)

	cfg.VarianceAccountID = 7
	assert.Nil(t, cfg.Validate())
}
