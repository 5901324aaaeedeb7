package shift_service

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mozzaworks/shift_service/customer"
	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/shift"
	"github.com/mozzaworks/shift_service/shift_core"
	"gorm.io/gorm"
)

type apiError struct {
	Error string `json:"error"`
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("encoding response", slog.String("err", err.Error()))
	}
}

func writeErr(w http.ResponseWriter, err error) {
	writeJSON(w, errStatus(err), &apiError{Error: err.Error()})
}

func errStatus(err error) int {
	var notFound *ledger_core.ErrAccountNotFound
	var badType *ledger_core.ErrAccountTypeInvalid
	var badAmount *ledger_core.ErrAmountInvalid
	var incomplete *shift_core.ErrIncompleteConfig

	switch {
	case errors.As(err, &notFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.As(err, &incomplete):
		return http.StatusPreconditionFailed
	case errors.Is(err, shift_core.ErrNoActiveShift),
		errors.Is(err, shift_core.ErrShiftAlreadyOpen),
		errors.Is(err, shift_core.ErrShiftClosed):
		return http.StatusConflict
	case errors.As(err, &badType),
		errors.As(err, &badAmount),
		errors.Is(err, ledger_core.ErrEmptyAccountName),
		errors.Is(err, customer.ErrEmptyCustomerName),
		errors.Is(err, shift.ErrAccountingDateInvalid):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
