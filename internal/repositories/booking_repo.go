package repositories

import (
	"database/sql"

	"gocart-admin/internal/config"
	"gocart-admin/internal/domain"
	"gocart-admin/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r BookingRepository) ListAll() ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT
			b.id,
			COALESCE(b.user_id,0),
			COALESCE(b.schedule_id,0),
			COALESCE(b.pickup_stop_id,0),
			COALESCE(b.dropoff_stop_id,0),
			COALESCE(b.fare,0),
			COALESCE(b.status,''),
			COALESCE(b.payment_ref,''),
			COALESCE(DATE_FORMAT(b.created_at,'%Y-%m-%d %H:%i:%s'),''),
			COALESCE(CONCAT(u.first_name,' ',u.last_name),''),
			COALESCE(DATE_FORMAT(sc.travel_date,'%Y-%m-%d'),''),
			COALESCE(ps.name,''),
			COALESCE(ds.name,''),
			COALESCE((
				SELECT GROUP_CONCAT(sl.seat_number ORDER BY sl.seat_number SEPARATOR ', ')
				FROM booking_seats bs
				JOIN seat_layouts sl ON sl.id = bs.seat_id
				WHERE bs.booking_id = b.id
			),'')
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id
		LEFT JOIN schedules sc ON sc.id = b.schedule_id
		LEFT JOIN stops ps ON ps.id = b.pickup_stop_id
		LEFT JOIN stops ds ON ds.id = b.dropoff_stop_id
		ORDER BY b.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.ScheduleID,
			&b.PickupStopID,
			&b.DropoffStopID,
			&b.Fare,
			&b.Status,
			&b.PaymentRef,
			&b.CreatedAt,
			&b.RiderName,
			&b.TravelDate,
			&b.PickupName,
			&b.DropoffName,
			&b.SeatNumbers,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	err := r.db().QueryRow(`
		SELECT
			id,
			COALESCE(user_id,0),
			COALESCE(schedule_id,0),
			COALESCE(pickup_stop_id,0),
			COALESCE(dropoff_stop_id,0),
			COALESCE(fare,0),
			COALESCE(status,''),
			COALESCE(payment_ref,''),
			COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM bookings WHERE id = ? LIMIT 1
	`, id).Scan(
		&b.ID,
		&b.UserID,
		&b.ScheduleID,
		&b.PickupStopID,
		&b.DropoffStopID,
		&b.Fare,
		&b.Status,
		&b.PaymentRef,
		&b.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, err
	}

	rows, err := r.db().Query(`SELECT seat_id FROM booking_seats WHERE booking_id = ? ORDER BY seat_id`, id)
	if err != nil {
		return models.Booking{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var seatID int64
		if err := rows.Scan(&seatID); err != nil {
			return models.Booking{}, err
		}
		b.SeatIDs = append(b.SeatIDs, seatID)
	}
	return b, rows.Err()
}

// Update overwrites every editable booking field. Rider and schedule stay as
// submitted; the status value is stored verbatim.
func (r BookingRepository) Update(b models.Booking) error {
	_, err := r.db().Exec(`
		UPDATE bookings SET
			schedule_id     = NULLIF(?,0),
			pickup_stop_id  = NULLIF(?,0),
			dropoff_stop_id = NULLIF(?,0),
			fare            = ?,
			status          = ?,
			payment_ref     = ?
		WHERE id = ?
	`, b.ScheduleID, b.PickupStopID, b.DropoffStopID, b.Fare, b.Status, b.PaymentRef, b.ID)
	return err
}

// ReplaceSeats swaps the full seat set for a booking in one transaction.
func (r BookingRepository) ReplaceSeats(bookingID int64, seatIDs []int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM booking_seats WHERE booking_id = ?`, bookingID); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, seatID := range seatIDs {
		if _, err := tx.Exec(`INSERT INTO booking_seats (booking_id, seat_id) VALUES (?, ?)`, bookingID, seatID); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r BookingRepository) Delete(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM booking_seats WHERE booking_id = ?`, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM bookings WHERE id = ?`, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r BookingRepository) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n)
	return n, err
}
