package account_test

import (
	"testing"

	"github.com/mozzaworks/shift_service/account"
	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/shift_mock"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAccountService(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing account service",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			shift_mock.Migrate(&db),
		},
		func(t *testing.T) {
			ctx := t.Context()
			svc := account.NewAccountService(&db)

			acc, err := svc.AccountCreate(ctx, &account.AccountCreatePayload{
				Name: "Petty Cash",
				Type: ledger_core.CashType,
			})

			assert.Nil(t, err)
			assert.NotEqual(t, uint(0), acc.ID)

			t.Run("empty name rejected", func(t *testing.T) {
				_, err := svc.AccountCreate(ctx, &account.AccountCreatePayload{
					Name: "",
					Type: ledger_core.CashType,
				})

				assert.ErrorIs(t, err, ledger_core.ErrEmptyAccountName)
			})

			t.Run("listing", func(t *testing.T) {
				accounts, err := svc.AccountList(ctx)
				assert.Nil(t, err)
				assert.Len(t, accounts, 1)
			})

			t.Run("audit on a clean account", func(t *testing.T) {
				assert.Nil(t, svc.AccountAudit(ctx, acc.ID))
			})

			t.Run("audit on an unknown account", func(t *testing.T) {
				err := svc.AccountAudit(ctx, 999)

				var notFound *ledger_core.ErrAccountNotFound
				assert.ErrorAs(t, err, &notFound)
			})
		},
	)
}
