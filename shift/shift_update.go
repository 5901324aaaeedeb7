package shift

import (
	"context"

	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/shift_core"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExpensePayload struct {
	Category string  `json:"category"`
	Desc     string  `json:"desc"`
	Amount   float64 `json:"amount"`
}

type CreditBillPayload struct {
	CustomerID   uint    `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
}

// ShiftUpdatePayload carries partial updates. A nil field is left untouched;
// a present list replaces the shift's list wholesale.
type ShiftUpdatePayload struct {
	TotalSales      *float64                      `json:"total_sales,omitempty"`
	Cards           *float64                      `json:"cards,omitempty"`
	HikingBar       *float64                      `json:"hiking_bar,omitempty"`
	ForeignCurrency *shift_core.ForeignCurrency   `json:"foreign_currency,omitempty"`
	CreditBills     *[]*CreditBillPayload         `json:"credit_bills,omitempty"`
	Injections      *[]*InjectionPayload          `json:"injections,omitempty"`
	Expenses        *[]*ExpensePayload            `json:"expenses,omitempty"`
}

func (payload *ShiftUpdatePayload) validate() error {
	if payload.CreditBills != nil {
		for _, bill := range *payload.CreditBills {
			if bill.Amount < 0 {
				return &ledger_core.ErrAmountInvalid{Field: "credit_bill", Amount: bill.Amount}
			}
		}
	}

	if payload.Injections != nil {
		for _, inj := range *payload.Injections {
			if inj.Amount < 0 {
				return &ledger_core.ErrAmountInvalid{Field: "injection", Amount: inj.Amount}
			}
		}
	}

	if payload.Expenses != nil {
		for _, exp := range *payload.Expenses {
			if exp.Amount < 0 {
				return &ledger_core.ErrAmountInvalid{Field: "expense", Amount: exp.Amount}
			}
		}
	}

	return nil
}

// ShiftUpdate implements ShiftService. Merges the payload into the active
// shift and recomputes expected cash from the post-merge values. No open
// shift is a no-op returning a nil shift.
func (s *shiftServiceImpl) ShiftUpdate(ctx context.Context, payload *ShiftUpdatePayload) (*shift_core.Shift, error) {
	err := payload.validate()
	if err != nil {
		return nil, err
	}

	var data *shift_core.Shift
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		smut := shift_core.NewShiftMutation(tx).Active(true).Preload()
		if smut.Err() != nil {
			return smut.Err()
		}

		if !smut.IsOpen() {
			return nil
		}

		data = smut.Data()

		if payload.TotalSales != nil {
			data.TotalSales = *payload.TotalSales
		}
		if payload.Cards != nil {
			data.Cards = *payload.Cards
		}
		if payload.HikingBar != nil {
			data.HikingBar = *payload.HikingBar
		}
		if payload.ForeignCurrency != nil {
			data.Fx = *payload.ForeignCurrency
		}

		if payload.CreditBills != nil {
			err := tx.Where("shift_id = ?", data.ID).Delete(&shift_core.CreditBillEntry{}).Error
			if err != nil {
				return err
			}

			data.CreditBills = shift_core.CreditBillList{}
			for _, bill := range *payload.CreditBills {
				item := shift_core.CreditBillEntry{
					ShiftID:      data.ID,
					CustomerID:   bill.CustomerID,
					CustomerName: bill.CustomerName,
					Amount:       bill.Amount,
				}

				err = tx.Create(&item).Error
				if err != nil {
					return err
				}

				data.CreditBills = append(data.CreditBills, &item)
			}
		}

		if payload.Injections != nil {
			err := tx.Where("shift_id = ?", data.ID).Delete(&shift_core.ShiftInjection{}).Error
			if err != nil {
				return err
			}

			data.Injections = shift_core.InjectionList{}
			for _, inj := range *payload.Injections {
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
		}

		if payload.Expenses != nil {
			err := tx.Where("shift_id = ?", data.ID).Delete(&shift_core.ShiftExpense{}).Error
			if err != nil {
				return err
			}

			data.Expenses = shift_core.ExpenseList{}
			for _, exp := range *payload.Expenses {
				item := shift_core.ShiftExpense{
					ShiftID:  data.ID,
					Category: exp.Category,
					Desc:     exp.Desc,
					Amount:   exp.Amount,
				}

				err = tx.Create(&item).Error
				if err != nil {
					return err
				}

				data.Expenses = append(data.Expenses, &item)
			}
		}

		data.RecomputeExpectedCash()

		return tx.Omit(clause.Associations).Save(data).Error
	})

	if err != nil {
		return nil, err
	}

	return data, nil
}
