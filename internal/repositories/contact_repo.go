package repositories

import (
	"database/sql"

	"gocart-admin/internal/config"
	"gocart-admin/internal/domain"
	"gocart-admin/internal/domain/models"
)

type ContactRepository struct {
	DB *sql.DB
}

func (r ContactRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const contactColumns = `
	id,
	COALESCE(email,''),
	COALESCE(subject,''),
	COALESCE(message,''),
	COALESCE(replied,0),
	COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')`

func (r ContactRepository) ListAll() ([]models.ContactMessage, error) {
	rows, err := r.db().Query(`SELECT ` + contactColumns + ` FROM contact_messages ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Email, &m.Subject, &m.Message, &m.Replied, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r ContactRepository) GetByID(id int64) (models.ContactMessage, error) {
	var m models.ContactMessage
	err := r.db().QueryRow(`SELECT `+contactColumns+` FROM contact_messages WHERE id = ? LIMIT 1`, id).
		Scan(&m.ID, &m.Email, &m.Subject, &m.Message, &m.Replied, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return models.ContactMessage{}, domain.NotFoundError{Resource: "contact message", Err: err}
	}
	return m, err
}

// MarkReplied records the one-way unreplied -> replied transition.
func (r ContactRepository) MarkReplied(id int64) error {
	_, err := r.db().Exec(`UPDATE contact_messages SET replied = 1 WHERE id = ?`, id)
	return err
}

func (r ContactRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM contact_messages WHERE id = ?`, id)
	return err
}

func (r ContactRepository) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM contact_messages`).Scan(&n)
	return n, err
}
