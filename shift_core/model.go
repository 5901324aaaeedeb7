package shift_core

import (
	"time"
)

type ShiftStatus string

const (
	StatusOpen   ShiftStatus = "open"
	StatusClosed ShiftStatus = "closed"
)

const AccountingDateLayout = "2006-01-02"

type ForeignCurrency struct {
	Value   float64 `json:"value"`
	Comment string  `json:"comment"`
}

type ShiftInjection struct {
	ID      uint    `json:"id" gorm:"primarykey"`
	ShiftID uint    `json:"shift_id" gorm:"index"`
	Source  string  `json:"source"`
	Amount  float64 `json:"amount"`
}

type InjectionList []*ShiftInjection

func (list InjectionList) Total() float64 {
	var total float64
	for _, item := range list {
		total += item.Amount
	}
	return total
}

type ShiftExpense struct {
	ID       uint    `json:"id" gorm:"primarykey"`
	ShiftID  uint    `json:"shift_id" gorm:"index"`
	Category string  `json:"category"`
	Desc     string  `json:"desc"`
	Amount   float64 `json:"amount"`
}

type ExpenseList []*ShiftExpense

func (list ExpenseList) Total() float64 {
	var total float64
	for _, item := range list {
		total += item.Amount
	}
	return total
}

type CreditBillEntry struct {
	ID           uint    `json:"id" gorm:"primarykey"`
	ShiftID      uint    `json:"shift_id" gorm:"index"`
	CustomerID   uint    `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Amount       float64 `json:"amount"`
}

type CreditBillList []*CreditBillEntry

func (list CreditBillList) Total() float64 {
	var total float64
	for _, item := range list {
		total += item.Amount
	}
	return total
}

type Shift struct {
	ID             uint        `json:"id" gorm:"primarykey"`
	Status         ShiftStatus `json:"status" gorm:"index"`
	StartTime      time.Time   `json:"start_time"`
	EndTime        *time.Time  `json:"end_time,omitempty"`
	AccountingDate string      `json:"accounting_date"`
	OpeningFloat   float64     `json:"opening_float"`

	TotalSales float64         `json:"total_sales"`
	Cards      float64         `json:"cards"`
	HikingBar  float64         `json:"hiking_bar"`
	Fx         ForeignCurrency `json:"foreign_currency" gorm:"embedded;embeddedPrefix:fx_"`

	CreditBills CreditBillList `json:"credit_bills" gorm:"foreignKey:ShiftID"`
	Injections  InjectionList  `json:"injections" gorm:"foreignKey:ShiftID"`
	Expenses    ExpenseList    `json:"expenses" gorm:"foreignKey:ShiftID"`

	// ExpectedCash is a cached derived value. It is recomputed from the other
	// fields on every mutation and never set directly.
	ExpectedCash float64  `json:"expected_cash"`
	ActualCash   *float64 `json:"actual_cash,omitempty"`
	Difference   *float64 `json:"difference,omitempty"`
	ClosedBy     string   `json:"closed_by,omitempty"`
}

func (s *Shift) TotalNonCash() float64 {
	return s.Cards + s.HikingBar + s.Fx.Value + s.CreditBills.Total()
}

func (s *Shift) CashSales() float64 {
	return s.TotalSales - s.TotalNonCash()
}

// RecomputeExpectedCash applies the canonical formula to the current field
// values. Pure given the fields, not cumulative.
func (s *Shift) RecomputeExpectedCash() {
	s.ExpectedCash = s.OpeningFloat + s.CashSales() + s.Injections.Total() - s.Expenses.Total()
}
