package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/domain"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// constraintError translates unique and check violations into domain errors.
// It returns nil when err is not a recognised constraint failure.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case PgErrorCodeUniqueViolation:
		switch pgErr.ConstraintName {
		case ConstraintBatchNumber:
			return domain.ErrDuplicateBatchNumber
		case ConstraintSerialNumber:
			return domain.ErrDuplicateSerialNumber
		case ConstraintCategoryName:
			return domain.ErrDuplicateCategory
		case ConstraintItemName:
			return domain.ErrDuplicateItem
		}
	case PgErrorCodeCheckViolation:
		if pgErr.ConstraintName == ConstraintStockNonNegative {
			return domain.ErrInsufficientStock
		}
	}
	return nil
}

// writeError maps constraint violations to domain errors and wraps anything else with msg.
func writeError(err error, msg string) error {
	if derr := constraintError(err); derr != nil {
		return derr
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ---- pgtype conversions ----

func tsToTime(t pgtype.Timestamptz) time.Time {
	return t.Time
}

func tsToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func timeToTs(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func ptrToTs(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return timeToTs(*t)
}

func dateToPtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	v := d.Time
	return &v
}

func timeToDate(t time.Time) pgtype.Date {
	y, m, day := t.Date()
	return pgtype.Date{Time: time.Date(y, m, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func ptrToDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return timeToDate(*t)
}

func int8ToPtr(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

func ptrToInt8(i *int64) pgtype.Int8 {
	if i == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *i, Valid: true}
}

func boolToPtr(b pgtype.Bool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}

func ptrToBool(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

func ptrToText[T ~string](s *T) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(*s), Valid: true}
}

func textToCondition(t pgtype.Text) *domain.ReturnCondition {
	if !t.Valid {
		return nil
	}
	c := domain.ReturnCondition(t.String)
	return &c
}
