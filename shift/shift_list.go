package shift

import (
	"context"

	"github.com/mozzaworks/shift_service/shift_core"
)

type ShiftListPayload struct {
	Status shift_core.ShiftStatus `json:"status,omitempty"`
	Limit  int                    `json:"limit,omitempty"`
}

// ActiveShift implements ShiftService. Returns nil when no shift is open.
func (s *shiftServiceImpl) ActiveShift(ctx context.Context) (*shift_core.Shift, error) {
	smut := shift_core.NewShiftMutation(s.db.WithContext(ctx)).Active(false).Preload()
	if smut.Err() != nil {
		return nil, smut.Err()
	}

	if !smut.IsOpen() {
		return nil, nil
	}

	return smut.Data(), nil
}

// ShiftList implements ShiftService.
func (s *shiftServiceImpl) ShiftList(ctx context.Context, payload *ShiftListPayload) ([]*shift_core.Shift, error) {
	shifts := []*shift_core.Shift{}

	query := s.db.WithContext(ctx).
		Model(&shift_core.Shift{}).
		Order("start_time desc")

	if payload.Status != "" {
		query = query.Where("status = ?", payload.Status)
	}

	if payload.Limit > 0 {
		query = query.Limit(payload.Limit)
	}

	err := query.Find(&shifts).Error
	if err != nil {
		return shifts, err
	}

	return shifts, nil
}
