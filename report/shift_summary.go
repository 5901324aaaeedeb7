package report

import (
	"context"

	"github.com/mozzaworks/shift_service/shift_core"
	"gorm.io/gorm"
)

type ShiftSummaryRequest struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type ShiftSummaryItem struct {
	AccountingDate string  `json:"accounting_date"`
	Shifts         int     `json:"shifts"`
	TotalSales     float64 `json:"total_sales"`
	Cards          float64 `json:"cards"`
	HikingBar      float64 `json:"hiking_bar"`
	Fx             float64 `json:"fx"`
	CreditBills    float64 `json:"credit_bills"`
	Injections     float64 `json:"injections"`
	Expenses       float64 `json:"expenses"`
	Variance       float64 `json:"variance"`
}

// ShiftSummary implements ReportService. Aggregates closed shifts per
// accounting date, newest first.
func (r *reportServiceImpl) ShiftSummary(ctx context.Context, payload *ShiftSummaryRequest) ([]*ShiftSummaryItem, error) {
	db := r.db.WithContext(ctx)

	result := []*ShiftSummaryItem{}
	index := map[string]*ShiftSummaryItem{}

	query := r.closedShiftQuery(db, payload).
		Select([]string{
			"shifts.accounting_date",
			"count(shifts.id) as shifts",
			"sum(shifts.total_sales) as total_sales",
			"sum(shifts.cards) as cards",
			"sum(shifts.hiking_bar) as hiking_bar",
			"sum(shifts.fx_value) as fx",
			"sum(coalesce(shifts.difference, 0)) as variance",
		}).
		Group("shifts.accounting_date").
		Order("shifts.accounting_date desc")

	rows, err := query.Rows()
	if err != nil {
		return result, err
	}
	defer rows.Close()

	for rows.Next() {
		var d ShiftSummaryItem
		err = db.ScanRows(rows, &d)
		if err != nil {
			return result, err
		}

		result = append(result, &d)
		index[d.AccountingDate] = &d
	}

	childSums := []struct {
		table  string
		assign func(item *ShiftSummaryItem, total float64)
	}{
		{"credit_bill_entries", func(item *ShiftSummaryItem, total float64) { item.CreditBills = total }},
		{"shift_injections", func(item *ShiftSummaryItem, total float64) { item.Injections = total }},
		{"shift_expenses", func(item *ShiftSummaryItem, total float64) { item.Expenses = total }},
	}

	for _, child := range childSums {
		type dateTotal struct {
			AccountingDate string
			Total          float64
		}

		totals := []*dateTotal{}
		err = r.closedShiftQuery(db, payload).
			Select("shifts.accounting_date, sum("+child.table+".amount) as total").
			Joins("join "+child.table+" on "+child.table+".shift_id = shifts.id").
			Group("shifts.accounting_date").
			Find(&totals).
			Error

		if err != nil {
			return result, err
		}

		for _, total := range totals {
			item := index[total.AccountingDate]
			if item == nil {
				continue
			}
			child.assign(item, total.Total)
		}
	}

	return result, nil
}

func (r *reportServiceImpl) closedShiftQuery(db *gorm.DB, payload *ShiftSummaryRequest) *gorm.DB {
	query := db.
		Table("shifts").
		Where("shifts.status = ?", shift_core.StatusClosed)

	if payload.StartDate != "" {
		query = query.Where("shifts.accounting_date >= ?", payload.StartDate)
	}

	if payload.EndDate != "" {
		query = query.Where("shifts.accounting_date <= ?", payload.EndDate)
	}

	return query
}
