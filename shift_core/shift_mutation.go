package shift_core

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShiftMutation interface {
	Active(lock bool) ShiftMutation
	ByID(shiftID uint, lock bool) ShiftMutation
	Preload() ShiftMutation
	IsExist() bool
	IsOpen() bool
	Data() *Shift
	Err() error
}

type shiftMutationImpl struct {
	tx   *gorm.DB
	data *Shift
	err  error
}

// Active implements ShiftMutation.
func (s *shiftMutationImpl) Active(lock bool) ShiftMutation {
	tx := s.tx

	s.data = &Shift{}

	if lock {
		tx = tx.Clauses(clause.Locking{
			Strength: "UPDATE",
		})
	}

	err := tx.Model(&Shift{}).
		Where("status = ?", StatusOpen).
		Find(s.data).
		Error

	if err != nil {
		return s.setErr(err)
	}
	return s
}

// ByID implements ShiftMutation.
func (s *shiftMutationImpl) ByID(shiftID uint, lock bool) ShiftMutation {
	tx := s.tx

	s.data = &Shift{}

	if lock {
		tx = tx.Clauses(clause.Locking{
			Strength: "UPDATE",
		})
	}

	err := tx.Model(&Shift{}).
		Where("id = ?", shiftID).
		Find(s.data).
		Error

	if err != nil {
		return s.setErr(err)
	}
	return s
}

// Preload implements ShiftMutation. Loads the shift's injections, expenses
// and credit bills in list order.
func (s *shiftMutationImpl) Preload() ShiftMutation {
	if s.data == nil {
		return s.setErr(ErrShiftNotLoaded)
	}

	if s.data.ID == 0 {
		return s
	}

	err := s.tx.Model(&ShiftInjection{}).
		Where("shift_id = ?", s.data.ID).
		Order("id asc").
		Find(&s.data.Injections).
		Error

	if err != nil {
		return s.setErr(err)
	}

	err = s.tx.Model(&ShiftExpense{}).
		Where("shift_id = ?", s.data.ID).
		Order("id asc").
		Find(&s.data.Expenses).
		Error

	if err != nil {
		return s.setErr(err)
	}

	err = s.tx.Model(&CreditBillEntry{}).
		Where("shift_id = ?", s.data.ID).
		Order("id asc").
		Find(&s.data.CreditBills).
		Error

	if err != nil {
		return s.setErr(err)
	}

	return s
}

// IsExist implements ShiftMutation.
func (s *shiftMutationImpl) IsExist() bool {
	return s.data != nil && s.data.ID != 0
}

// IsOpen implements ShiftMutation.
func (s *shiftMutationImpl) IsOpen() bool {
	return s.IsExist() && s.data.Status == StatusOpen
}

// Data implements ShiftMutation.
func (s *shiftMutationImpl) Data() *Shift {
	return s.data
}

// Err implements ShiftMutation.
func (s *shiftMutationImpl) Err() error {
	return s.err
}

func (s *shiftMutationImpl) setErr(err error) *shiftMutationImpl {
	if s.err != nil {
		return s
	}

	if err != nil {
		s.err = err
	}

	return s
}

func NewShiftMutation(tx *gorm.DB) ShiftMutation {
	return &shiftMutationImpl{
		tx: tx,
	}
}
