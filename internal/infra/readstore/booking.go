package readstore

import (
	"context"
	"fmt"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra/db"
	"lendhub/internal/pkg/page"
	"lendhub/internal/pkg/pgconv"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingSelect = `
	SELECT b.id, b.item_id, i.name, b.booker_id, u.name,
	       b.start_at, b.end_at, b.status, b.created_at, b.updated_at
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id
`

type bookingReadStoreImpl struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) queries.BookingReadStore {
	return &bookingReadStoreImpl{db: dbtx}
}

func (s *bookingReadStoreImpl) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := bookingSelect + ` WHERE b.id = $1`
	row := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	view, err := scanBookingView(row)
	if err != nil {
		return nil, wrapReadErr("find booking view", err)
	}
	return view, nil
}

func (s *bookingReadStoreImpl) ListByBooker(ctx context.Context, bookerID uuid.UUID, f booking.StateFilter, now time.Time, p page.Spec) ([]*queries.BookingView, error) {
	return s.list(ctx, `b.booker_id = $1`, pgconv.UUIDToPgtype(bookerID), f, now, p)
}

func (s *bookingReadStoreImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, f booking.StateFilter, now time.Time, p page.Spec) ([]*queries.BookingView, error) {
	return s.list(ctx, `i.owner_id = $1`, pgconv.UUIDToPgtype(ownerID), f, now, p)
}

func (s *bookingReadStoreImpl) list(ctx context.Context, scope string, scopeArg any, f booking.StateFilter, now time.Time, p page.Spec) ([]*queries.BookingView, error) {
	query := bookingSelect + ` WHERE ` + scope
	args := []any{scopeArg}

	switch f {
	case booking.FilterAll:
	case booking.FilterCurrent:
		query += ` AND b.start_at <= $2 AND b.end_at >= $2`
		args = append(args, pgconv.TimeToPgtype(now))
	case booking.FilterPast:
		query += ` AND b.end_at < $2`
		args = append(args, pgconv.TimeToPgtype(now))
	case booking.FilterFuture:
		query += ` AND b.start_at > $2`
		args = append(args, pgconv.TimeToPgtype(now))
	case booking.FilterWaiting:
		query += ` AND b.status = 'WAITING'`
	case booking.FilterRejected:
		query += ` AND b.status = 'REJECTED'`
	}

	query += fmt.Sprintf(` ORDER BY b.start_at DESC OFFSET $%d LIMIT $%d`, len(args)+1, len(args)+2)
	args = append(args, p.Offset, p.Limit)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("list booking views", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, wrapReadErr("scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("iterate booking views", err)
	}
	return views, nil
}

func (s *bookingReadStoreImpl) LastApprovedForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	const query = `
		SELECT id, booker_id, start_at, end_at
		FROM bookings
		WHERE item_id = $1 AND status = 'APPROVED' AND end_at < $2
		ORDER BY end_at DESC
		LIMIT 1
	`
	return s.findRef(ctx, query, itemID, now)
}

func (s *bookingReadStoreImpl) NextApprovedForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	const query = `
		SELECT id, booker_id, start_at, end_at
		FROM bookings
		WHERE item_id = $1 AND status = 'APPROVED' AND end_at > $2
		ORDER BY end_at ASC
		LIMIT 1
	`
	return s.findRef(ctx, query, itemID, now)
}

func (s *bookingReadStoreImpl) findRef(ctx context.Context, query string, itemID uuid.UUID, now time.Time) (*queries.BookingRef, error) {
	var (
		id       pgtype.UUID
		bookerID pgtype.UUID
		startAt  pgtype.Timestamptz
		endAt    pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(itemID), pgconv.TimeToPgtype(now)).
		Scan(&id, &bookerID, &startAt, &endAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, wrapReadErr("find booking ref", err)
	}
	return &queries.BookingRef{
		ID:       uuid.UUID(id.Bytes),
		BookerID: uuid.UUID(bookerID.Bytes),
		Start:    pgconv.TimeFromPgtype(startAt),
		End:      pgconv.TimeFromPgtype(endAt),
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		id         pgtype.UUID
		itemID     pgtype.UUID
		itemName   string
		bookerID   pgtype.UUID
		bookerName string
		startAt    pgtype.Timestamptz
		endAt      pgtype.Timestamptz
		status     string
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &itemID, &itemName, &bookerID, &bookerName,
		&startAt, &endAt, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &queries.BookingView{
		ID:         uuid.UUID(id.Bytes),
		ItemID:     uuid.UUID(itemID.Bytes),
		ItemName:   itemName,
		BookerID:   uuid.UUID(bookerID.Bytes),
		BookerName: bookerName,
		Start:      pgconv.TimeFromPgtype(startAt),
		End:        pgconv.TimeFromPgtype(endAt),
		Status:     status,
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:  pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
