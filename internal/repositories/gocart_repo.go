package repositories

import (
	"database/sql"

	"gocart-admin/internal/config"
	"gocart-admin/internal/domain"
	"gocart-admin/internal/domain/models"
)

type GoCartRepository struct {
	DB *sql.DB
}

func (r GoCartRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r GoCartRepository) ListAll() ([]models.GoCart, error) {
	rows, err := r.db().Query(`
		SELECT
			g.id,
			COALESCE(g.number_plate,''),
			COALESCE(g.driver_id,0),
			COALESCE(g.route_id,0),
			COALESCE(g.capacity,0),
			COALESCE(CONCAT(u.first_name,' ',u.last_name),''),
			COALESCE(rt.name,'')
		FROM gocarts g
		LEFT JOIN users u ON u.id = g.driver_id
		LEFT JOIN routes rt ON rt.id = g.route_id
		ORDER BY g.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carts := []models.GoCart{}
	for rows.Next() {
		var g models.GoCart
		if err := rows.Scan(
			&g.ID,
			&g.NumberPlate,
			&g.DriverID,
			&g.RouteID,
			&g.Capacity,
			&g.DriverName,
			&g.RouteName,
		); err != nil {
			return nil, err
		}
		carts = append(carts, g)
	}
	return carts, rows.Err()
}

func (r GoCartRepository) GetByID(id int64) (models.GoCart, error) {
	var g models.GoCart
	err := r.db().QueryRow(`
		SELECT
			id,
			COALESCE(number_plate,''),
			COALESCE(driver_id,0),
			COALESCE(route_id,0),
			COALESCE(capacity,0)
		FROM gocarts WHERE id = ? LIMIT 1
	`, id).Scan(
		&g.ID,
		&g.NumberPlate,
		&g.DriverID,
		&g.RouteID,
		&g.Capacity,
	)
	if err == sql.ErrNoRows {
		return models.GoCart{}, domain.NotFoundError{Resource: "gocart", Err: err}
	}
	return g, err
}

func (r GoCartRepository) Create(g models.GoCart) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO gocarts (number_plate, driver_id, route_id, capacity)
		VALUES (?, NULLIF(?,0), NULLIF(?,0), ?)
	`, g.NumberPlate, g.DriverID, g.RouteID, g.Capacity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r GoCartRepository) Update(g models.GoCart) error {
	_, err := r.db().Exec(`
		UPDATE gocarts SET
			number_plate = ?,
			driver_id    = NULLIF(?,0),
			route_id     = NULLIF(?,0),
			capacity     = ?
		WHERE id = ?
	`, g.NumberPlate, g.DriverID, g.RouteID, g.Capacity, g.ID)
	return err
}

func (r GoCartRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM gocarts WHERE id = ?`, id)
	return err
}

func (r GoCartRepository) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM gocarts`).Scan(&n)
	return n, err
}
