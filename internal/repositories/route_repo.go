package repositories

import (
	"database/sql"

	"gocart-admin/internal/config"
	"gocart-admin/internal/domain"
	"gocart-admin/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r RouteRepository) ListAll() ([]models.Route, error) {
	rows, err := r.db().Query(`SELECT id, COALESCE(name,'') FROM routes ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := []models.Route{}
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.ID, &rt.Name); err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range routes {
		stops, err := r.listStops(routes[i].ID)
		if err != nil {
			return nil, err
		}
		routes[i].Stops = stops
		for _, s := range stops {
			routes[i].StopIDs = append(routes[i].StopIDs, s.ID)
		}
	}
	return routes, nil
}

func (r RouteRepository) GetByID(id int64) (models.Route, error) {
	var rt models.Route
	err := r.db().QueryRow(`SELECT id, COALESCE(name,'') FROM routes WHERE id = ? LIMIT 1`, id).
		Scan(&rt.ID, &rt.Name)
	if err == sql.ErrNoRows {
		return models.Route{}, domain.NotFoundError{Resource: "route", Err: err}
	}
	if err != nil {
		return models.Route{}, err
	}

	stops, err := r.listStops(id)
	if err != nil {
		return models.Route{}, err
	}
	rt.Stops = stops
	for _, s := range stops {
		rt.StopIDs = append(rt.StopIDs, s.ID)
	}
	return rt, nil
}

func (r RouteRepository) listStops(routeID int64) ([]models.Stop, error) {
	rows, err := r.db().Query(`
		SELECT s.id, COALESCE(s.name,''), COALESCE(s.latitude,0), COALESCE(s.longitude,0)
		FROM route_stops rs
		JOIN stops s ON s.id = rs.stop_id
		WHERE rs.route_id = ?
		ORDER BY s.id
	`, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stops := []models.Stop{}
	for rows.Next() {
		var s models.Stop
		if err := rows.Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude); err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

func (r RouteRepository) Create(name string) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO routes (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RouteRepository) UpdateName(id int64, name string) error {
	_, err := r.db().Exec(`UPDATE routes SET name = ? WHERE id = ?`, name, id)
	return err
}

// ReplaceStops swaps the full stop set for a route in one transaction.
// Stops absent from stopIDs are detached, new ones attached.
func (r RouteRepository) ReplaceStops(routeID int64, stopIDs []int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM route_stops WHERE route_id = ?`, routeID); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, stopID := range stopIDs {
		if _, err := tx.Exec(`INSERT INTO route_stops (route_id, stop_id) VALUES (?, ?)`, routeID, stopID); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r RouteRepository) Delete(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM route_stops WHERE route_id = ?`, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM routes WHERE id = ?`, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r RouteRepository) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM routes`).Scan(&n)
	return n, err
}
