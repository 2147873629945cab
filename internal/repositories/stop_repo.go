package repositories

import (
	"database/sql"

	"gocart-admin/internal/config"
	"gocart-admin/internal/domain"
	"gocart-admin/internal/domain/models"
)

type StopRepository struct {
	DB *sql.DB
}

func (r StopRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r StopRepository) ListAll() ([]models.Stop, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(latitude,0), COALESCE(longitude,0)
		FROM stops ORDER BY id DESC
	`)
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

func (r StopRepository) GetByID(id int64) (models.Stop, error) {
	var s models.Stop
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(latitude,0), COALESCE(longitude,0)
		FROM stops WHERE id = ? LIMIT 1
	`, id).Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude)
	if err == sql.ErrNoRows {
		return models.Stop{}, domain.NotFoundError{Resource: "stop", Err: err}
	}
	return s, err
}

func (r StopRepository) Create(s models.Stop) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO stops (name, latitude, longitude) VALUES (?, ?, ?)
	`, s.Name, s.Latitude, s.Longitude)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r StopRepository) Update(s models.Stop) error {
	_, err := r.db().Exec(`
		UPDATE stops SET name = ?, latitude = ?, longitude = ? WHERE id = ?
	`, s.Name, s.Latitude, s.Longitude, s.ID)
	return err
}

func (r StopRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM stops WHERE id = ?`, id)
	return err
}

func (r StopRepository) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM stops`).Scan(&n)
	return n, err
}
