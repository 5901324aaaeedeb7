package shift_transaction_test

import (
	"testing"
	"time"

	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/shift_core"
	"github.com/mozzaworks/shift_service/shift_mock"
	"github.com/mozzaworks/shift_service/shift_transaction"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func fullConfig() *shift_core.ShiftFlowConfig {
	return &shift_core.ShiftFlowConfig{
		ID:                shift_core.FlowConfigID,
		SalesAccountID:    1,
		CardsAccountID:    2,
		HikingAccountID:   3,
		FxAccountID:       4,
		BillsAccountID:    5,
		CashAccountID:     6,
		VarianceAccountID: 7,
	}
}

func closedShift() *shift_core.Shift {
	end := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	actual := float64(760)
	diff := float64(10)

	return &shift_core.Shift{
		ID:             7,
		Status:         shift_core.StatusClosed,
		StartTime:      end.Add(-8 * time.Hour),
		EndTime:        &end,
		AccountingDate: "2024-03-01",
		OpeningFloat:   100,
		TotalSales:     1000,
		Cards:          300,
		Expenses: shift_core.ExpenseList{
			{Category: "Operations", Desc: "fuel", Amount: 50},
		},
		ExpectedCash: 750,
		ActualCash:   &actual,
		Difference:   &diff,
	}
}

func TestBuildPostings(t *testing.T) {
	t.Run("worked closing day", func(t *testing.T) {
		shift := closedShift()
		cfg := fullConfig()

		postings := shift_transaction.BuildPostings(shift, cfg)
		assert.Len(t, postings, 8)

		type leg struct {
			AccountID uint
			Amount    float64
			Category  string
			Desc      string
		}

		got := []leg{}
		for _, tran := range postings {
			got = append(got, leg{tran.AccountID, tran.Amount, tran.Category, tran.Desc})
		}

		assert.Equal(t, []leg{
			{1, 1000, "Revenue", "Sales Revenue (2024-03-01)"},
			{1, -300, "Transfer", "Sales Card Sweep"},
			{2, 300, "Transfer", "Card Settlement Receipt"},
			{6, -50, "Operations", "Shift Expense: fuel"},
			{1, -700, "Transfer", "Cash Sales Deposit"},
			{6, 700, "Transfer", "Cash Sales Receipt"},
			{7, 10, "Adjustment", "Shift Cash Variance (Over)"},
			{6, 10, "Adjustment", "Cash Variance Correction"},
		}, got)

		// the sales account nets to zero once every component left it
		assert.Equal(t, float64(0), postings.AccountBalance()[cfg.SalesAccountID])

		for i, tran := range postings {
			assert.Equal(t, ledger_core.NewShiftRefID(shift.ID, i), tran.RefID)
			assert.Equal(t, shift.ID, tran.ShiftID)
			assert.Equal(t, *shift.EndTime, tran.Date)
		}
	})

	t.Run("zero sales day still records revenue", func(t *testing.T) {
		shift := closedShift()
		shift.TotalSales = 0
		shift.Cards = 0
		shift.Expenses = nil
		diff := float64(0)
		shift.Difference = &diff

		postings := shift_transaction.BuildPostings(shift, fullConfig())
		assert.Len(t, postings, 1)
		assert.Equal(t, float64(0), postings[0].Amount)
		assert.Equal(t, "Revenue", postings[0].Category)
	})

	t.Run("every credit bill gets its own pair", func(t *testing.T) {
		shift := closedShift()
		shift.Cards = 0
		shift.Expenses = nil
		shift.CreditBills = shift_core.CreditBillList{
			{CustomerName: "Regular Guest", Amount: 120},
			{CustomerName: "VIP Table 5", Amount: 0},
		}

		postings := shift_transaction.BuildPostings(shift, fullConfig())

		descs := []string{}
		for _, tran := range postings {
			descs = append(descs, tran.Desc)
		}

		assert.Contains(t, descs, "Credit Bill: Regular Guest")
		assert.Contains(t, descs, "Receivable: Regular Guest")
		// zero-amount bills stay on the record
		assert.Contains(t, descs, "Credit Bill: VIP Table 5")
		assert.Contains(t, descs, "Receivable: VIP Table 5")
	})

	t.Run("shortage keeps both variance legs negative", func(t *testing.T) {
		shift := closedShift()
		diff := float64(-25)
		shift.Difference = &diff

		postings := shift_transaction.BuildPostings(shift, fullConfig())

		last := postings[len(postings)-1]
		prev := postings[len(postings)-2]

		assert.Equal(t, "Shift Cash Variance (Short)", prev.Desc)
		assert.Equal(t, float64(-25), prev.Amount)
		assert.Equal(t, "Cash Variance Correction", last.Desc)
		assert.Equal(t, float64(-25), last.Amount)
	})

	t.Run("fx transfer carries the comment", func(t *testing.T) {
		shift := closedShift()
		shift.Cards = 0
		shift.Expenses = nil
		shift.Fx = shift_core.ForeignCurrency{Value: 80, Comment: "2x 40 EUR"}

		postings := shift_transaction.BuildPostings(shift, fullConfig())

		assert.Equal(t, "FX Reserve Transfer", postings[1].Desc)
		assert.Equal(t, float64(-80), postings[1].Amount)
		assert.Equal(t, "FX Reserve: 2x 40 EUR", postings[2].Desc)
		assert.Equal(t, float64(80), postings[2].Amount)
	})
}

func TestSweep(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing sweep persistence",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			shift_mock.Migrate(&db),
			shift_mock.PopulateLedger(&db),
		},
		func(t *testing.T) {
			shift := closedShift()
			shift.ID = 0
			err := db.Create(shift).Error
			assert.Nil(t, err)

			cfg, err := shift_core.GetFlowConfig(&db)
			assert.Nil(t, err)
			assert.Nil(t, cfg.Validate())

			sweepOnce := func() error {
				return ledger_core.OpenLedger(t.Context(), &db, func(tx *gorm.DB, book ledger_core.LedgerManage) error {
					return shift_transaction.
						NewSweepTransaction(t.Context(), tx, book).
						Sweep(&shift_transaction.SweepPayload{
							Shift:  shift,
							Config: cfg,
						})
				})
			}

			assert.Nil(t, sweepOnce())

			trmut := ledger_core.NewTransactionMutation(&db).ByShiftID(shift.ID, false)
			assert.Nil(t, trmut.Err())
			assert.Len(t, trmut.Data(), 8)

			t.Run("second sweep does not double-post", func(t *testing.T) {
				err := sweepOnce()
				assert.ErrorIs(t, err, ledger_core.ErrAlreadySwept)

				trmut := ledger_core.NewTransactionMutation(&db).ByShiftID(shift.ID, false)
				assert.Nil(t, trmut.Err())
				assert.Len(t, trmut.Data(), 8)
			})

			t.Run("legs hit the configured accounts", func(t *testing.T) {
				var cash ledger_core.Account
				err := db.Model(&ledger_core.Account{}).First(&cash, cfg.CashAccountID).Error
				assert.Nil(t, err)

				// -50 expense +700 cash sales +10 variance correction
				assert.Equal(t, float64(660), cash.Balance)
				assert.Nil(t, ledger_core.CheckBalance(&db, cfg.CashAccountID))
			})

			t.Run("unfinalized shift rejected", func(t *testing.T) {
				open := &shift_core.Shift{
					Status:         shift_core.StatusOpen,
					StartTime:      time.Now(),
					AccountingDate: "2024-03-02",
				}
				err := db.Create(open).Error
				assert.Nil(t, err)

				err = ledger_core.OpenLedger(t.Context(), &db, func(tx *gorm.DB, book ledger_core.LedgerManage) error {
					return shift_transaction.
						NewSweepTransaction(t.Context(), tx, book).
						Sweep(&shift_transaction.SweepPayload{
							Shift:  open,
							Config: cfg,
						})
				})

				assert.NotNil(t, err)
			})
		},
	)
}
