package repositories

import (
	"database/sql"

	"gocart-admin/internal/config"
	"gocart-admin/internal/domain/models"
)

// SeatLayoutRepository is read-only here; seat layouts are managed when a
// gocart is provisioned, bookings only reference them.
type SeatLayoutRepository struct {
	DB *sql.DB
}

func (r SeatLayoutRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r SeatLayoutRepository) ListAll() ([]models.SeatLayout, error) {
	return r.list(`SELECT id, COALESCE(gocart_id,0), COALESCE(seat_number,'') FROM seat_layouts ORDER BY gocart_id, seat_number`)
}

func (r SeatLayoutRepository) ListByGoCart(gocartID int64) ([]models.SeatLayout, error) {
	return r.list(`SELECT id, COALESCE(gocart_id,0), COALESCE(seat_number,'') FROM seat_layouts WHERE gocart_id = ? ORDER BY seat_number`, gocartID)
}

func (r SeatLayoutRepository) list(query string, args ...any) ([]models.SeatLayout, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := []models.SeatLayout{}
	for rows.Next() {
		var s models.SeatLayout
		if err := rows.Scan(&s.ID, &s.GoCartID, &s.SeatNumber); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}
