package setup_test

import (
	"testing"

	"github.com/mozzaworks/shift_service/customer"
	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/mozzaworks/shift_service/setup"
	"github.com/mozzaworks/shift_service/shift_core"
	"github.com/mozzaworks/shift_service/shift_mock"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSeed(t *testing.T) {
	var db gorm.DB

	var migrateCustomer moretest.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(&customer.Customer{})
		assert.Nil(t, err)

		return nil
	}

	moretest.Suite(t, "testing seed",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			shift_mock.Migrate(&db),
			migrateCustomer,
		},
		func(t *testing.T) {
			ctx := t.Context()
			svc := setup.NewSetupService(&db)

			err := svc.Seed(ctx)
			assert.Nil(t, err)

			cfg, err := svc.FlowConfigGet(ctx)
			assert.Nil(t, err)
			assert.Nil(t, cfg.Validate())

			var accounts int64
			err = db.Model(&ledger_core.Account{}).Count(&accounts).Error
			assert.Nil(t, err)
			assert.Equal(t, int64(7), accounts)

			t.Run("reseeding changes nothing", func(t *testing.T) {
				err := svc.Seed(ctx)
				assert.Nil(t, err)

				var accounts int64
				err = db.Model(&ledger_core.Account{}).Count(&accounts).Error
				assert.Nil(t, err)
				assert.Equal(t, int64(7), accounts)

				var customers int64
				err = db.Model(&customer.Customer{}).Count(&customers).Error
				assert.Nil(t, err)
				assert.Equal(t, int64(2), customers)
			})

			t.Run("config set rejects an unknown account", func(t *testing.T) {
				bad := *cfg
				bad.CashAccountID = 999

				err := svc.FlowConfigSet(ctx, &bad)

				var notFound *ledger_core.ErrAccountNotFound
				assert.ErrorAs(t, err, &notFound)
			})

			t.Run("config set replaces the singleton row", func(t *testing.T) {
				next := *cfg
				next.CashAccountID = cfg.CardsAccountID

				err := svc.FlowConfigSet(ctx, &next)
				assert.Nil(t, err)

				got, err := svc.FlowConfigGet(ctx)
				assert.Nil(t, err)
				assert.Equal(t, shift_core.FlowConfigID, got.ID)
				assert.Equal(t, cfg.CardsAccountID, got.CashAccountID)
			})
		},
	)
}
