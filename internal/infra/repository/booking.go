package repository

import (
	"context"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra/db"
	"lendhub/internal/pkg/pgconv"
	"lendhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type bookingRepositoryImpl struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) commands.BookingRepository {
	return &bookingRepositoryImpl{db: dbtx}
}

func (r *bookingRepositoryImpl) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, item_id, booker_id, start_at, end_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	`
	if _, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ItemID()),
		pgconv.UUIDToPgtype(b.BookerID()),
		pgconv.TimeToPgtype(b.Window().Start()),
		pgconv.TimeToPgtype(b.Window().End()),
		string(b.Status()),
	); err != nil {
		return uuid.Nil, wrapPgErr("insert booking", err)
	}
	return b.ID(), nil
}

func (r *bookingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, item_id, booker_id, start_at, end_at, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	b, err := scanBooking(row)
	if err != nil {
		return nil, wrapPgErr("find booking", err)
	}
	return b, nil
}

// DecideIfWaiting performs the status transition as a single conditional
// write so concurrent decisions cannot both succeed.
func (r *bookingRepositoryImpl) DecideIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error) {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'WAITING'
	`
	tag, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id), string(status))
	if err != nil {
		return false, wrapPgErr("decide booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *bookingRepositoryImpl) ListByItemAndBooker(ctx context.Context, itemID, bookerID uuid.UUID) ([]*booking.Booking, error) {
	const query = `
		SELECT id, item_id, booker_id, start_at, end_at, status, created_at, updated_at
		FROM bookings
		WHERE item_id = $1 AND booker_id = $2
		ORDER BY start_at DESC
	`
	rows, err := r.db.Query(ctx, query, pgconv.UUIDToPgtype(itemID), pgconv.UUIDToPgtype(bookerID))
	if err != nil {
		return nil, wrapPgErr("list bookings by item and booker", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, wrapPgErr("scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("iterate bookings", err)
	}
	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id        pgtype.UUID
		itemID    pgtype.UUID
		bookerID  pgtype.UUID
		startAt   pgtype.Timestamptz
		endAt     pgtype.Timestamptz
		status    string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &itemID, &bookerID, &startAt, &endAt, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	parsed, err := booking.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		uuid.UUID(id.Bytes),
		uuid.UUID(itemID.Bytes),
		uuid.UUID(bookerID.Bytes),
		booking.ReconstructTimeWindow(pgconv.TimeFromPgtype(startAt), pgconv.TimeFromPgtype(endAt)),
		parsed,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
