package report_balance

import (
	"context"
	"log/slog"

	"gorm.io/gorm"
)

type BalanceResync interface {
	Resync(ctx context.Context) error
}

type balanceResyncImpl struct {
	db *gorm.DB
}

// Resync implements BalanceResync. Rewrites every stored account balance
// from the posting log inside one transaction. Recovers accounts whose
// cached balance drifted from the log.
func (b *balanceResyncImpl) Resync(ctx context.Context) error {
	db := b.db.WithContext(ctx)

	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range resyncStatements() {
			slog.Info("balance resync", slog.String("step", stmt.Name))

			err := tx.Exec(stmt.SQL).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func NewBalanceResync(db *gorm.DB) BalanceResync {
	return &balanceResyncImpl{
		db: db,
	}
}
