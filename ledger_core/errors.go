package ledger_core

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var Precision = 5

func RoundUp(x float64, n int) float64 {
	pow := math.Pow(10, float64(n))
	result := math.Floor(x*pow) / pow
	return result
}

var (
	ErrEmptyAccountName = errors.New("account name empty")
	ErrPostingsEmpty    = errors.New("postings empty in ledger unit")
	ErrAlreadySwept     = errors.New("shift already swept")
)

type ErrAccountTypeInvalid struct {
	Type AccountType `json:"type"`
}

// Error implements error.
func (e *ErrAccountTypeInvalid) Error() string {
	return fmt.Sprintf("account type invalid %s", e.Type)
}

type ErrAccountNotFound struct {
	AccountID uint `json:"account_id"`
}

// Error implements error.
func (e *ErrAccountNotFound) Error() string {
	return fmt.Sprintf("account not found %d", e.AccountID)
}

type ErrAmountInvalid struct {
	Field  string  `json:"field"`
	Amount float64 `json:"amount"`
}

// Error implements error.
func (e *ErrAmountInvalid) Error() string {
	return fmt.Sprintf("amount invalid %s %f", e.Field, e.Amount)
}

type ErrBalanceInvalid struct {
	AccountID uint            `json:"account_id"`
	Balance   float64         `json:"balance"`
	PostedSum float64         `json:"posted_sum"`
	List      TransactionList `json:"list"`
	Precision int             `json:"precision"`
}

// Error implements error.
func (e *ErrBalanceInvalid) Error() string {
	raw, _ := json.Marshal(e)
	return "account balance invalid" + string(raw)
}
