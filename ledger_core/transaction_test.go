package ledger_core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPostTransaction(t *testing.T) {
	var db gorm.DB

	var migrate moretest.SetupFunc = func(t *testing.T) func() error {
		err := db.AutoMigrate(
			&ledger_core.Account{},
			&ledger_core.Transaction{},
		)
		assert.Nil(t, err)

		return nil
	}

	moretest.Suite(t, "testing posting",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			migrate,
		},
		func(t *testing.T) {
			acc, err := ledger_core.
				NewCreateAccount(&db).
				Create("Main Cash Till", ledger_core.CashType)

			assert.Nil(t, err)
			assert.NotEqual(t, uint(0), acc.ID)
			assert.Equal(t, float64(0), acc.Balance)

			t.Run("empty name rejected", func(t *testing.T) {
				_, err := ledger_core.
					NewCreateAccount(&db).
					Create("   ", ledger_core.CashType)

				assert.ErrorIs(t, err, ledger_core.ErrEmptyAccountName)
			})

			t.Run("unknown type rejected", func(t *testing.T) {
				_, err := ledger_core.
					NewCreateAccount(&db).
					Create("Weird", ledger_core.AccountType("liability"))

				var badType *ledger_core.ErrAccountTypeInvalid
				assert.ErrorAs(t, err, &badType)
			})

			t.Run("posting moves the balance with the row", func(t *testing.T) {
				err := ledger_core.OpenLedger(t.Context(), &db, func(tx *gorm.DB, book ledger_core.LedgerManage) error {
					return book.
						NewPost().
						Post(&ledger_core.Transaction{
							RefID:     ledger_core.NewManualRefID("test-1"),
							AccountID: acc.ID,
							Amount:    120,
							Category:  "Revenue",
							Desc:      "test posting",
							Date:      time.Now(),
						}).
						Err()
				})

				assert.Nil(t, err)

				var after ledger_core.Account
				err = db.Model(&ledger_core.Account{}).First(&after, acc.ID).Error
				assert.Nil(t, err)
				assert.Equal(t, float64(120), after.Balance)

				assert.Nil(t, ledger_core.CheckBalance(&db, acc.ID))
			})

			t.Run("unknown account rejected", func(t *testing.T) {
				err := ledger_core.OpenLedger(t.Context(), &db, func(tx *gorm.DB, book ledger_core.LedgerManage) error {
					return book.
						NewPost().
						Post(&ledger_core.Transaction{
							RefID:     ledger_core.NewManualRefID("test-2"),
							AccountID: 999,
							Amount:    10,
							Date:      time.Now(),
						}).
						Err()
				})

				var notFound *ledger_core.ErrAccountNotFound
				assert.ErrorAs(t, err, &notFound)
				assert.Equal(t, uint(999), notFound.AccountID)
			})

			t.Run("failed unit rolls every posting back", func(t *testing.T) {
				boom := errors.New("boom")

				err := ledger_core.OpenLedger(t.Context(), &db, func(tx *gorm.DB, book ledger_core.LedgerManage) error {
					err := book.
						NewPost().
						Post(&ledger_core.Transaction{
							RefID:     ledger_core.NewManualRefID("test-3"),
							AccountID: acc.ID,
							Amount:    55,
							Date:      time.Now(),
						}).
						Err()

					assert.Nil(t, err)
					return boom
				})

				assert.ErrorIs(t, err, boom)

				var after ledger_core.Account
				err = db.Model(&ledger_core.Account{}).First(&after, acc.ID).Error
				assert.Nil(t, err)
				assert.Equal(t, float64(120), after.Balance)

				var count int64
				err = db.Model(&ledger_core.Transaction{}).
					Where("account_id = ?", acc.ID).
					Count(&count).
					Error
				assert.Nil(t, err)
				assert.Equal(t, int64(1), count)
			})

			t.Run("balance check flags a drifted account", func(t *testing.T) {
				err := db.Model(&ledger_core.Account{}).
					Where("id = ?", acc.ID).
					UpdateColumn("balance", 9999).
					Error
				assert.Nil(t, err)

				err = ledger_core.CheckBalance(&db, acc.ID)

				var invalid *ledger_core.ErrBalanceInvalid
				assert.ErrorAs(t, err, &invalid)
				assert.Equal(t, float64(9999), invalid.Balance)
				assert.Equal(t, float64(120), invalid.PostedSum)

				// restore
				err = db.Model(&ledger_core.Account{}).
					Where("id = ?", acc.ID).
					UpdateColumn("balance", 120).
					Error
				assert.Nil(t, err)
			})
		},
	)
}

func TestRefID(t *testing.T) {
	ref := ledger_core.NewShiftRefID(12, 3)
	assert.Equal(t, ledger_core.RefID("shift_close#12#3"), ref)

	data, err := ref.Extract()
	assert.Nil(t, err)
	assert.Equal(t, ledger_core.ShiftCloseRef, data.RefType)
	assert.Equal(t, uint(12), data.ShiftID)
	assert.Equal(t, 3, data.Seq)

	manual := ledger_core.NewManualRefID("abc")
	data, err = manual.Extract()
	assert.Nil(t, err)
	assert.Equal(t, ledger_core.ManualRef, data.RefType)
}
