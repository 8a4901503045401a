package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/wildgrove/resort-booking-service/internal/domain"
	"github.com/wildgrove/resort-booking-service/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var reservationColumns = []string{
	"id",
	"reservation_no",
	"room_rate_id",
	"room_name",
	"check_in",
	"check_out",
	"adults",
	"children",
	"rooms",
	"guest_first_name",
	"guest_last_name",
	"guest_email",
	"guest_mobile",
	"base_discounted_total",
	"gst_total",
	"extra_adults_total",
	"extra_children_total",
	"total",
	"currency",
	"payment_order_id",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для хранения созданных бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись о созданном в PMS бронировании
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"reservation_no",
			"room_rate_id",
			"room_name",
			"check_in",
			"check_out",
			"adults",
			"children",
			"rooms",
			"guest_first_name",
			"guest_last_name",
			"guest_email",
			"guest_mobile",
			"base_discounted_total",
			"gst_total",
			"extra_adults_total",
			"extra_children_total",
			"total",
			"currency",
			"status",
		).
		Values(
			res.ReservationNo,
			res.RoomRateID,
			res.RoomName,
			res.CheckIn,
			res.CheckOut,
			res.Adults,
			res.Children,
			res.Rooms,
			res.GuestFirstName,
			res.GuestLastName,
			res.GuestEmail,
			res.GuestMobile,
			res.BaseDiscountedTotal,
			res.GSTTotal,
			res.ExtraAdultsTotal,
			res.ExtraChildrenTotal,
			res.Total,
			res.Currency,
			res.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateReservation
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByReservationNo получает бронирование по номеру брони из PMS
func (r *Repository) GetByReservationNo(ctx context.Context, reservationNo string) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"reservation_no": reservationNo}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationNo - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanReservation(r.db.QueryRowContext(ctx, query, args...))
}

// GetByEmail получает бронирования гостя по email, сначала новые
func (r *Repository) GetByEmail(ctx context.Context, email string) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"guest_email": email}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var reservations []*domain.Reservation
	for rows.Next() {
		res, err := r.scanReservationRow(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - iterate rows: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// SetPaymentOrder привязывает платежный ордер к бронированию
func (r *Repository) SetPaymentOrder(ctx context.Context, reservationNo, orderID string) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("payment_order_id", orderID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reservation_no": reservationNo}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentOrder - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "SetPaymentOrder", query, args)
}

// UpdateStatus обновляет платежный статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, reservationNo string, status domain.ReservationStatus) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reservation_no": reservationNo}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, "UpdateStatus", query, args)
}

func (r *Repository) execExpectingRow(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row *sql.Row) (*domain.Reservation, error) {
	res, err := r.scanReservationRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	return res, err
}

func (r *Repository) scanReservationRow(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime
	var paymentOrderID sql.NullString

	err := row.Scan(
		&res.ID,
		&res.ReservationNo,
		&res.RoomRateID,
		&res.RoomName,
		&res.CheckIn,
		&res.CheckOut,
		&res.Adults,
		&res.Children,
		&res.Rooms,
		&res.GuestFirstName,
		&res.GuestLastName,
		&res.GuestEmail,
		&res.GuestMobile,
		&res.BaseDiscountedTotal,
		&res.GSTTotal,
		&res.ExtraAdultsTotal,
		&res.ExtraChildrenTotal,
		&res.Total,
		&res.Currency,
		&paymentOrderID,
		&res.Status,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan reservation: %v", ErrScanRow, err)
	}

	if paymentOrderID.Valid {
		res.PaymentOrderID = &paymentOrderID.String
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
