package shift_service

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/mozzaworks/shift_service/account"
	"github.com/mozzaworks/shift_service/customer"
	"github.com/mozzaworks/shift_service/ledger"
	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/report"
	"github.com/mozzaworks/shift_service/report/report_balance"
	"github.com/mozzaworks/shift_service/setup"
	"github.com/mozzaworks/shift_service/shift"
	"github.com/mozzaworks/shift_service/shift_core"
	"github.com/pdcgo/shared/pkg/ware_cache"
	"gorm.io/gorm"
)

type MigrationHandler func() error

func NewMigrationHandler(
	db *gorm.DB,
) MigrationHandler {
	return func() error {
		log.Println("migrating shift service")
		return db.AutoMigrate(
			&ledger_core.Account{},
			&ledger_core.Transaction{},
			&shift_core.Shift{},
			&shift_core.ShiftInjection{},
			&shift_core.ShiftExpense{},
			&shift_core.CreditBillEntry{},
			&shift_core.ShiftFlowConfig{},
			&customer.Customer{},
		)
	}
}

type SeedHandler func() error

func NewSeedHandler(
	db *gorm.DB,
) SeedHandler {
	return func() error {
		log.Println("seeding shift service")
		return setup.NewSetupService(db).Seed(context.Background())
	}
}

type RegisterHandler func()

func NewRegister(
	db *gorm.DB,
	mux *http.ServeMux,
	cache ware_cache.Cache,
) RegisterHandler {
	accountSrv := account.NewAccountService(db)
	ledgerSrv := ledger.NewLedgerService(db)
	shiftSrv := shift.NewShiftService(db)
	setupSrv := setup.NewSetupService(db)
	customerSrv := customer.NewCustomerService(db)
	reportSrv := report.NewReportService(db, cache)
	resyncSrv := report_balance.NewBalanceResync(db)

	return func() {
		mux.HandleFunc("POST /api/accounts", func(w http.ResponseWriter, r *http.Request) {
			var pay account.AccountCreatePayload
			if err := readJSON(r, &pay); err != nil {
				writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
				return
			}

			acc, err := accountSrv.AccountCreate(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, acc)
		})

		mux.HandleFunc("GET /api/accounts", func(w http.ResponseWriter, r *http.Request) {
			accounts, err := accountSrv.AccountList(r.Context())
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, accounts)
		})

		mux.HandleFunc("GET /api/accounts/{id}/audit", func(w http.ResponseWriter, r *http.Request) {
			accID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
				return
			}

			err = accountSrv.AccountAudit(r.Context(), uint(accID))
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		})

		mux.HandleFunc("POST /api/transactions", func(w http.ResponseWriter, r *http.Request) {
			var pay ledger.TransactionCreatePayload
			if err := readJSON(r, &pay); err != nil {
				writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
				return
			}

			tran, err := ledgerSrv.TransactionCreate(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, tran)
		})

		mux.HandleFunc("GET /api/transactions", func(w http.ResponseWriter, r *http.Request) {
			pay := ledger.TransactionListPayload{}
			query := r.URL.Query()

			if raw := query.Get("account_id"); raw != "" {
				accID, err := strconv.ParseUint(raw, 10, 64)
				if err != nil {
					writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
					return
				}
				pay.AccountID = uint(accID)
			}

			if raw := query.Get("shift_id"); raw != "" {
				shiftID, err := strconv.ParseUint(raw, 10, 64)
				if err != nil {
					writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
					return
				}
				pay.ShiftID = uint(shiftID)
			}

			if raw := query.Get("limit"); raw != "" {
				limit, err := strconv.Atoi(raw)
				if err != nil {
					writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
					return
				}
				pay.Limit = limit
			}

			trans, err := ledgerSrv.TransactionList(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, trans)
		})

		mux.HandleFunc("POST /api/shifts/start", func(w http.ResponseWriter, r *http.Request) {
			var pay shift.ShiftStartPayload
			if err := readJSON(r, &pay); err != nil {
				writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
				return
			}

			data, err := shiftSrv.ShiftStart(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, data)
		})

		mux.HandleFunc("POST /api/shifts/update", func(w http.ResponseWriter, r *http.Request) {
			var pay shift.ShiftUpdatePayload
			if err := readJSON(r, &pay); err != nil {
				writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
				return
			}

			data, err := shiftSrv.ShiftUpdate(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, data)
		})

		mux.HandleFunc("POST /api/shifts/close", func(w http.ResponseWriter, r *http.Request) {
			var pay shift.ShiftClosePayload
			if err := readJSON(r, &pay); err != nil {
				writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
				return
			}

			data, err := shiftSrv.ShiftClose(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, data)
		})

		mux.HandleFunc("GET /api/shifts/active", func(w http.ResponseWriter, r *http.Request) {
			data, err := shiftSrv.ActiveShift(r.Context())
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, data)
		})

		mux.HandleFunc("GET /api/shifts", func(w http.ResponseWriter, r *http.Request) {
			pay := shift.ShiftListPayload{
				Status: shift_core.ShiftStatus(r.URL.Query().Get("status")),
			}

			if raw := r.URL.Query().Get("limit"); raw != "" {
				limit, err := strconv.Atoi(raw)
				if err != nil {
					writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
					return
				}
				pay.Limit = limit
			}

			shifts, err := shiftSrv.ShiftList(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, shifts)
		})

		mux.HandleFunc("GET /api/config/shift-flow", func(w http.ResponseWriter, r *http.Request) {
			cfg, err := setupSrv.FlowConfigGet(r.Context())
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, cfg)
		})

		mux.HandleFunc("PUT /api/config/shift-flow", func(w http.ResponseWriter, r *http.Request) {
			var cfg shift_core.ShiftFlowConfig
			if err := readJSON(r, &cfg); err != nil {
				writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
				return
			}

			err := setupSrv.FlowConfigSet(r.Context(), &cfg)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, &cfg)
		})

		mux.HandleFunc("POST /api/customers", func(w http.ResponseWriter, r *http.Request) {
			var pay customer.CustomerCreatePayload
			if err := readJSON(r, &pay); err != nil {
				writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
				return
			}

			cust, err := customerSrv.CustomerCreate(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, cust)
		})

		mux.HandleFunc("GET /api/customers", func(w http.ResponseWriter, r *http.Request) {
			customers, err := customerSrv.CustomerList(r.Context())
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, customers)
		})

		mux.HandleFunc("GET /api/reports/balance", func(w http.ResponseWriter, r *http.Request) {
			pay := report.BalanceRequest{}
			for _, raw := range r.URL.Query()["type"] {
				pay.Types = append(pay.Types, ledger_core.AccountType(raw))
			}

			items, err := reportSrv.Balance(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, items)
		})

		mux.HandleFunc("GET /api/reports/balance/{id}", func(w http.ResponseWriter, r *http.Request) {
			accID, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, &apiError{Error: err.Error()})
				return
			}

			detail, err := reportSrv.BalanceDetail(r.Context(), &report.BalanceDetailRequest{
				AccountID: uint(accID),
			})
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, detail)
		})

		mux.HandleFunc("POST /api/reports/balance/resync", func(w http.ResponseWriter, r *http.Request) {
			err := resyncSrv.Resync(r.Context())
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		})

		mux.HandleFunc("GET /api/reports/shift-summary", func(w http.ResponseWriter, r *http.Request) {
			pay := report.ShiftSummaryRequest{
				StartDate: r.URL.Query().Get("start_date"),
				EndDate:   r.URL.Query().Get("end_date"),
			}

			items, err := reportSrv.ShiftSummary(r.Context(), &pay)
			if err != nil {
				writeErr(w, err)
				return
			}
			writeJSON(w, http.StatusOK, items)
		})
	}
}
