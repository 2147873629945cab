package repositories

import (
	"database/sql"

	"gocart-admin/internal/config"
	"gocart-admin/internal/domain"
	"gocart-admin/internal/domain/models"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r ScheduleRepository) ListAll() ([]models.Schedule, error) {
	rows, err := r.db().Query(`
		SELECT
			s.id,
			COALESCE(s.gocart_id,0),
			COALESCE(DATE_FORMAT(s.travel_date,'%Y-%m-%d'),''),
			COALESCE(TIME_FORMAT(s.start_time,'%H:%i'),''),
			COALESCE(TIME_FORMAT(s.drop_time,'%H:%i'),''),
			COALESCE(g.number_plate,'')
		FROM schedules s
		LEFT JOIN gocarts g ON g.id = s.gocart_id
		ORDER BY s.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []models.Schedule{}
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(
			&s.ID,
			&s.GoCartID,
			&s.TravelDate,
			&s.StartTime,
			&s.DropTime,
			&s.NumberPlate,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r ScheduleRepository) GetByID(id int64) (models.Schedule, error) {
	var s models.Schedule
	err := r.db().QueryRow(`
		SELECT
			id,
			COALESCE(gocart_id,0),
			COALESCE(DATE_FORMAT(travel_date,'%Y-%m-%d'),''),
			COALESCE(TIME_FORMAT(start_time,'%H:%i'),''),
			COALESCE(TIME_FORMAT(drop_time,'%H:%i'),'')
		FROM schedules WHERE id = ? LIMIT 1
	`, id).Scan(&s.ID, &s.GoCartID, &s.TravelDate, &s.StartTime, &s.DropTime)
	if err == sql.ErrNoRows {
		return models.Schedule{}, domain.NotFoundError{Resource: "schedule", Err: err}
	}
	return s, err
}

func (r ScheduleRepository) Create(s models.Schedule) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO schedules (gocart_id, travel_date, start_time, drop_time)
		VALUES (?, ?, ?, ?)
	`, s.GoCartID, s.TravelDate, s.StartTime, s.DropTime)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ScheduleRepository) Update(s models.Schedule) error {
	_, err := r.db().Exec(`
		UPDATE schedules SET
			gocart_id   = ?,
			travel_date = ?,
			start_time  = ?,
			drop_time   = ?
		WHERE id = ?
	`, s.GoCartID, s.TravelDate, s.StartTime, s.DropTime, s.ID)
	return err
}

func (r ScheduleRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM schedules WHERE id = ?`, id)
	return err
}

func (r ScheduleRepository) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM schedules`).Scan(&n)
	return n, err
}
