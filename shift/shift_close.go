package shift

import (
	"context"
	"errors"
	"time"

	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/shift_core"
	"github.com/mozzaworks/shift_service/shift_transaction"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShiftClosePayload struct {
	ActualCash float64 `json:"actual_cash"`
	ClosedBy   string  `json:"closed_by"`
}

// ShiftClose implements ShiftService. The flow config gate runs before any
// mutation; the sweep legs and the closed shift record then commit as one
// ledger unit. A persistence failure rolls everything back and the shift
// stays open for a retry; a retry that finds its legs already posted does
// not post them again.
func (s *shiftServiceImpl) ShiftClose(ctx context.Context, payload *ShiftClosePayload) (*shift_core.Shift, error) {
	if payload.ActualCash < 0 {
		return nil, &ledger_core.ErrAmountInvalid{Field: "actual_cash", Amount: payload.ActualCash}
	}

	var data *shift_core.Shift
	err := ledger_core.OpenLedger(ctx, s.db, func(tx *gorm.DB, book ledger_core.LedgerManage) error {
		cfg, err := shift_core.GetFlowConfig(tx)
		if err != nil {
			return err
		}

		err = cfg.Validate()
		if err != nil {
			return err
		}

		smut := shift_core.NewShiftMutation(tx).Active(true).Preload()
		if smut.Err() != nil {
			return smut.Err()
		}

		if !smut.IsOpen() {
			return shift_core.ErrNoActiveShift
		}

		data = smut.Data()

		now := time.Now()
		difference := payload.ActualCash - data.ExpectedCash

		data.Status = shift_core.StatusClosed
		data.EndTime = &now
		data.ActualCash = &payload.ActualCash
		data.Difference = &difference
		data.ClosedBy = payload.ClosedBy

		err = shift_transaction.
			NewSweepTransaction(ctx, tx, book).
			Sweep(&shift_transaction.SweepPayload{
				Shift:  data,
				Config: cfg,
			})

		if err != nil && !errors.Is(err, ledger_core.ErrAlreadySwept) {
			return err
		}

		return tx.Omit(clause.Associations).Save(data).Error
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}
