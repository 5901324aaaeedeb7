package shift

import (
	"context"

	"github.com/mozzaworks/shift_service/shift_core"
	"gorm.io/gorm"
)

type ShiftService interface {
	ShiftStart(ctx context.Context, payload *ShiftStartPayload) (*shift_core.Shift, error)
	ShiftUpdate(ctx context.Context, payload *ShiftUpdatePayload) (*shift_core.Shift, error)
	ShiftClose(ctx context.Context, payload *ShiftClosePayload) (*shift_core.Shift, error)
	ActiveShift(ctx context.Context) (*shift_core.Shift, error)
	ShiftList(ctx context.Context, payload *ShiftListPayload) ([]*shift_core.Shift, error)
}

type shiftServiceImpl struct {
	db *gorm.DB
}

func NewShiftService(db *gorm.DB) ShiftService {
	return &shiftServiceImpl{
		db: db,
	}
}
