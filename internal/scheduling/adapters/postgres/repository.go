package postgres

import (
	"context"
	"fmt"

	"institute-insights-service/internal/scheduling/core/domain"
	"institute-insights-service/internal/scheduling/core/ports"

	"github.com/google/uuid"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type Tx interface {
	Querier
	ExecContext(ctx context.Context, query string, args ...any) error
	Commit() error
	Rollback() error
}

type DB interface {
	Querier
	BeginTx(ctx context.Context) (Tx, error)
}

type SlotRepository struct {
	db    DB
	newID func() string
}

func NewSlotRepository(db DB) *SlotRepository {
	return &SlotRepository{db: db, newID: uuid.NewString}
}

var _ ports.ReservedSlotRepositoryPort = (*SlotRepository)(nil)

const listSlotsSQL = `
SELECT
    day_of_week,
    to_char(start_time, 'HH24:MI'),
    to_char(end_time, 'HH24:MI'),
    group_id
FROM reserved_slots
WHERE teacher_id = $1
ORDER BY day_of_week, start_time, group_id`

// Serialises concurrent replaces for the same teacher until commit.
const lockTeacherSQL = `SELECT pg_advisory_xact_lock(hashtext($1))`

const deleteGroupSlotsSQL = `DELETE FROM reserved_slots WHERE teacher_id = $1 AND group_id = $2`

const insertSlotSQL = `
INSERT INTO reserved_slots (id, teacher_id, group_id, day_of_week, start_time, end_time)
VALUES ($1, $2, $3, $4, $5::time, $6::time)`

func (r *SlotRepository) ListReservedSlots(ctx context.Context, teacherID string) ([]domain.TimeSlot, error) {
	return listSlots(ctx, r.db, teacherID)
}

func (r *SlotRepository) ReplaceGroupSlots(ctx context.Context, teacherID, groupID string, slots []domain.TimeSlot, check ports.ReplaceCheck) (err error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	lock, err := tx.QueryContext(ctx, lockTeacherSQL, teacherID)
	if err != nil {
		return fmt.Errorf("lock teacher: %w", err)
	}
	if err = lock.Close(); err != nil {
		return fmt.Errorf("lock teacher: %w", err)
	}

	reserved, err := listSlots(ctx, tx, teacherID)
	if err != nil {
		return err
	}
	if check != nil {
		if err = check(reserved); err != nil {
			return err
		}
	}

	if err = tx.ExecContext(ctx, deleteGroupSlotsSQL, teacherID, groupID); err != nil {
		return fmt.Errorf("delete group slots: %w", err)
	}
	for _, s := range slots {
		if err = tx.ExecContext(ctx, insertSlotSQL, r.newID(), teacherID, groupID, s.DayOfWeek, s.StartTime, s.EndTime); err != nil {
			return fmt.Errorf("insert slot: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func listSlots(ctx context.Context, q Querier, teacherID string) ([]domain.TimeSlot, error) {
	rows, err := q.QueryContext(ctx, listSlotsSQL, teacherID)
	if err != nil {
		return nil, fmt.Errorf("list reserved slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.TimeSlot
	for rows.Next() {
		var s domain.TimeSlot
		if err := rows.Scan(&s.DayOfWeek, &s.StartTime, &s.EndTime, &s.GroupID); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}
