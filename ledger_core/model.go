package ledger_core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type AccountType string

const (
	ReceivableType AccountType = "receivable"
	IncomeType     AccountType = "income"
	PayableType    AccountType = "payable"
	AssetType      AccountType = "asset"
	CashType       AccountType = "cash"
	BankType       AccountType = "bank"
	EquityType     AccountType = "equity"
)

func (t AccountType) Valid() bool {
	switch t {
	case ReceivableType, IncomeType, PayableType, AssetType, CashType, BankType, EquityType:
		return true
	}
	return false
}

type Account struct {
	ID      uint        `json:"id" gorm:"primarykey"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance float64     `json:"balance"`
	Created time.Time   `json:"created"`
}

// Transaction is append-only. Balance corrections are made with compensating
// postings, never by editing a row.
type Transaction struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	RefID     RefID     `json:"ref_id" gorm:"index:ref_unique,unique"`
	AccountID uint      `json:"account_id" gorm:"index"`
	ShiftID   uint      `json:"shift_id,omitempty" gorm:"index"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Desc      string    `json:"desc"`
	Date      time.Time `json:"date"`
	Created   time.Time `json:"created"`
}

type TransactionList []*Transaction

func (list TransactionList) AccountBalance() map[uint]float64 {
	balances := map[uint]float64{}
	for _, tran := range list {
		balances[tran.AccountID] += tran.Amount
	}
	return balances
}

func (list TransactionList) Total() float64 {
	var total float64
	for _, tran := range list {
		total += tran.Amount
	}
	return total
}

type RefType string

const (
	ShiftCloseRef RefType = "shift_close"
	ManualRef     RefType = "manual"
)

type RefID string

func NewShiftRefID(shiftID uint, seq int) RefID {
	return RefID(fmt.Sprintf("%s#%d#%d", ShiftCloseRef, shiftID, seq))
}

func NewManualRefID(key string) RefID {
	return RefID(fmt.Sprintf("%s#%s", ManualRef, key))
}

type RefData struct {
	RefType RefType
	ShiftID uint
	Seq     int
}

func (r RefID) Extract() (*RefData, error) {
	ss := strings.Split(string(r), "#")
	data := RefData{RefType: RefType(ss[0])}
	if data.RefType != ShiftCloseRef {
		return &data, nil
	}

	if len(ss) != 3 {
		return &data, fmt.Errorf("malformed shift ref id %s", r)
	}

	shiftID, err := strconv.ParseUint(ss[1], 10, 64)
	if err != nil {
		return &data, err
	}
	seq, err := strconv.Atoi(ss[2])
	if err != nil {
		return &data, err
	}

	data.ShiftID = uint(shiftID)
	data.Seq = seq
	return &data, nil
}
