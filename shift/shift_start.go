package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/shift_core"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAccountingDateInvalid = errors.New("accounting date invalid")

type InjectionPayload struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
}

type ShiftStartPayload struct {
	OpeningFloat   float64             `json:"opening_float"`
	AccountingDate string              `json:"accounting_date"`
	Injections     []*InjectionPayload `json:"injections"`
}

// ShiftStart implements ShiftService. Creates the active shift with every
// cash component zeroed. Rejected while another shift is still open.
func (s *shiftServiceImpl) ShiftStart(ctx context.Context, payload *ShiftStartPayload) (*shift_core.Shift, error) {
	if payload.OpeningFloat < 0 {
		return nil, &ledger_core.ErrAmountInvalid{Field: "opening_float", Amount: payload.OpeningFloat}
	}

	for _, inj := range payload.Injections {
		if inj.Amount < 0 {
			return nil, &ledger_core.ErrAmountInvalid{Field: "injection", Amount: inj.Amount}
		}
	}

	_, err := time.Parse(shift_core.AccountingDateLayout, payload.AccountingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountingDateInvalid, payload.AccountingDate)
	}

	var data *shift_core.Shift
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		smut := shift_core.NewShiftMutation(tx).Active(true)
		if smut.Err() != nil {
			return smut.Err()
		}

		if smut.IsOpen() {
			return shift_core.ErrShiftAlreadyOpen
		}

		data = &shift_core.Shift{
			Status:         shift_core.StatusOpen,
			StartTime:      time.Now(),
			AccountingDate: payload.AccountingDate,
			OpeningFloat:   payload.OpeningFloat,
		}

		err := tx.Omit(clause.Associations).Create(data).Error
		if err != nil {
			return err
		}

		for _, inj := range payload.Injections {
			item := shift_core.ShiftInjection{
				ShiftID: data.ID,
				Source:  inj.Source,
				Amount:  inj.Amount,
			}

			err = tx.Create(&item).Error
			if err != nil {
				return err
			}

			data.Injections = append(data.Injections, &item)
		}

		data.RecomputeExpectedCash()

		return tx.Omit(clause.Associations).Save(data).Error
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}
