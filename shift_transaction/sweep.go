package shift_transaction

import (
	"context"
	"fmt"

	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/shift_core"
	"gorm.io/gorm"
)

type SweepPayload struct {
	Shift  *shift_core.Shift
	Config *shift_core.ShiftFlowConfig
}

type SweepTransaction interface {
	Sweep(payload *SweepPayload) error
}

type sweepTransactionImpl struct {
	ctx  context.Context
	tx   *gorm.DB
	book ledger_core.LedgerManage
}

// Sweep implements SweepTransaction. Expects a closing shift with EndTime
// and Difference already set, inside an open ledger unit. A shift whose legs
// are already on the ledger is not posted again.
func (s *sweepTransactionImpl) Sweep(payload *SweepPayload) error {
	shift := payload.Shift

	if shift.EndTime == nil || shift.Difference == nil {
		return fmt.Errorf("shift %d not finalized for sweep", shift.ID)
	}

	trmut := ledger_core.
		NewTransactionMutation(s.tx).
		ByShiftID(shift.ID, true)

	if trmut.Err() != nil {
		return trmut.Err()
	}

	if trmut.IsExist() {
		return ledger_core.ErrAlreadySwept
	}

	for _, tran := range BuildPostings(shift, payload.Config) {
		err := s.book.
			NewPost().
			Post(tran).
			Err()

		if err != nil {
			return err
		}
	}

	return nil
}

// BuildPostings computes the full ordered leg list for one closing shift.
// Pure, no I/O. The posting order and description texts are part of the
// observable record and must not change.
func BuildPostings(shift *shift_core.Shift, cfg *shift_core.ShiftFlowConfig) ledger_core.TransactionList {
	postings := ledger_core.TransactionList{}
	endTime := *shift.EndTime

	seq := 0
	add := func(accountID uint, amount float64, category, desc string) {
		postings = append(postings, &ledger_core.Transaction{
			RefID:     ledger_core.NewShiftRefID(shift.ID, seq),
			AccountID: accountID,
			ShiftID:   shift.ID,
			Amount:    amount,
			Category:  category,
			Desc:      desc,
			Date:      endTime,
		})
		seq++
	}

	// 1. gross sales recognition
	add(cfg.SalesAccountID, shift.TotalSales, "Revenue",
		fmt.Sprintf("Sales Revenue (%s)", shift.AccountingDate))

	// 2. non-cash components out of sales, matched pairs
	if shift.Cards > 0 {
		add(cfg.SalesAccountID, -shift.Cards, "Transfer", "Sales Card Sweep")
		add(cfg.CardsAccountID, shift.Cards, "Transfer", "Card Settlement Receipt")
	}

	if shift.HikingBar > 0 {
		add(cfg.SalesAccountID, -shift.HikingBar, "Transfer", "Hiking Bar Shift Portion")
		add(cfg.HikingAccountID, shift.HikingBar, "Transfer", "Hiking Bar Receivable Log")
	}

	if shift.Fx.Value > 0 {
		add(cfg.SalesAccountID, -shift.Fx.Value, "Transfer", "FX Reserve Transfer")
		add(cfg.FxAccountID, shift.Fx.Value, "Transfer",
			fmt.Sprintf("FX Reserve: %s", shift.Fx.Comment))
	}

	for _, bill := range shift.CreditBills {
		add(cfg.SalesAccountID, -bill.Amount, "Transfer",
			fmt.Sprintf("Credit Bill: %s", bill.CustomerName))
		add(cfg.BillsAccountID, bill.Amount, "Transfer",
			fmt.Sprintf("Receivable: %s", bill.CustomerName))
	}

	// 3. expenses straight off the till, no sales counter-leg
	for _, exp := range shift.Expenses {
		add(cfg.CashAccountID, -exp.Amount, exp.Category,
			fmt.Sprintf("Shift Expense: %s", exp.Desc))
	}

	// 4. remaining cash portion
	cashSales := shift.CashSales()
	if cashSales > 0 {
		add(cfg.SalesAccountID, -cashSales, "Transfer", "Cash Sales Deposit")
		add(cfg.CashAccountID, cashSales, "Transfer", "Cash Sales Receipt")
	}

	// 5. variance, recorded twice with the same sign. Not a balanced pair.
	difference := *shift.Difference
	if difference != 0 {
		direction := "Short"
		if difference > 0 {
			direction = "Over"
		}
		add(cfg.VarianceAccountID, difference, "Adjustment",
			fmt.Sprintf("Shift Cash Variance (%s)", direction))
		add(cfg.CashAccountID, difference, "Adjustment", "Cash Variance Correction")
	}

	return postings
}

func NewSweepTransaction(ctx context.Context, tx *gorm.DB, book ledger_core.LedgerManage) SweepTransaction {
	return &sweepTransactionImpl{
		ctx:  ctx,
		tx:   tx,
		book: book,
	}
}
