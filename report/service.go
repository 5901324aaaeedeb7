package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mozzaworks/shift_service/ledger_core"
	"github.com/pdcgo/shared/pkg/ware_cache"
	"gorm.io/gorm"
)

type ReportService interface {
	Balance(ctx context.Context, payload *BalanceRequest) ([]*AccountBalanceItem, error)
	BalanceDetail(ctx context.Context, payload *BalanceDetailRequest) (*BalanceDetailResult, error)
	ShiftSummary(ctx context.Context, payload *ShiftSummaryRequest) ([]*ShiftSummaryItem, error)
}

type reportServiceImpl struct {
	db    *gorm.DB
	cache ware_cache.Cache
}

func (r *reportServiceImpl) getAccount(ctx context.Context, accID uint) (*ledger_core.Account, error) {
	var acc ledger_core.Account
	key := fmt.Sprintf("shift_service/account/%d", accID)

	err := r.cache.Get(ctx, key, &acc)
	if err != nil {
		if !errors.Is(err, ware_cache.ErrCacheMiss) {
			return &acc, err
		}

		err = r.db.Model(&ledger_core.Account{}).
			Where("id = ?", accID).
			Find(&acc).
			Error

		if err != nil {
			return &acc, err
		}

		if acc.ID == 0 {
			return &acc, &ledger_core.ErrAccountNotFound{AccountID: accID}
		}

		err = r.cache.Add(ctx, &ware_cache.CacheItem{
			Key:        key,
			Expiration: time.Minute * 15,
			Data:       &acc,
		})
		if err != nil {
			return &acc, err
		}
	}

	return &acc, nil
}

func NewReportService(db *gorm.DB, cache ware_cache.Cache) ReportService {
	return &reportServiceImpl{
		db:    db,
		cache: cache,
	}
}
