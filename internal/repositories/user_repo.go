package repositories

import (
	"database/sql"

	"gocart-admin/internal/config"
	"gocart-admin/internal/domain"
	"gocart-admin/internal/domain/models"
)

// UserRepository wraps DB access for the users table. Driver and student
// operations are always filtered by role so an id from one listing cannot
// reach a record of another role.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const userColumns = `
	id,
	COALESCE(username,''),
	COALESCE(password_hash,''),
	COALESCE(role,''),
	COALESCE(is_staff,0),
	COALESCE(first_name,''),
	COALESCE(last_name,''),
	COALESCE(email,''),
	COALESCE(phone,''),
	COALESCE(gender,''),
	COALESCE(DATE_FORMAT(dob,'%Y-%m-%d'),''),
	COALESCE(present_address,''),
	COALESCE(postal_code,''),
	COALESCE(home_district,''),
	COALESCE(nationality,''),
	COALESCE(nid_card_no,''),
	COALESCE(profile_picture,''),
	COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.IsStaff,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Gender,
		&u.DOB,
		&u.PresentAddress,
		&u.PostalCode,
		&u.HomeDistrict,
		&u.Nationality,
		&u.NIDCardNo,
		&u.ProfilePicture,
		&u.CreatedAt,
	)
	return u, err
}

func (r UserRepository) GetByUsername(username string) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE username = ? LIMIT 1`, username)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

// GetAnyByID resolves an identity without a role filter; used by the session
// guard where the staff flag, not the role tag, decides access.
func (r UserRepository) GetAnyByID(id int64) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ? LIMIT 1`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

func (r UserRepository) GetByID(id int64, role string) (models.User, error) {
	row := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ? AND role = ? LIMIT 1`, id, role)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: role, Err: err}
	}
	return u, err
}

func (r UserRepository) ListByRole(role string) ([]models.User, error) {
	rows, err := r.db().Query(`SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY id DESC`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update overwrites every editable field. Credentials and role are never
// touched here; profile_picture only when updatePicture is set.
func (r UserRepository) Update(u models.User, updatePicture bool) error {
	query := `
		UPDATE users SET
			first_name      = ?,
			last_name       = ?,
			email           = ?,
			phone           = ?,
			gender          = ?,
			dob             = NULLIF(?, ''),
			present_address = ?,
			postal_code     = ?,
			home_district   = ?,
			nationality     = ?,
			nid_card_no     = ?`
	args := []any{
		u.FirstName,
		u.LastName,
		u.Email,
		u.Phone,
		u.Gender,
		u.DOB,
		u.PresentAddress,
		u.PostalCode,
		u.HomeDistrict,
		u.Nationality,
		u.NIDCardNo,
	}
	if updatePicture {
		query += `,
			profile_picture = ?`
		args = append(args, u.ProfilePicture)
	}
	query += `
		WHERE id = ? AND role = ?`
	args = append(args, u.ID, u.Role)

	_, err := r.db().Exec(query, args...)
	return err
}

func (r UserRepository) Delete(id int64, role string) error {
	_, err := r.db().Exec(`DELETE FROM users WHERE id = ? AND role = ?`, id, role)
	return err
}

func (r UserRepository) CountByRole(role string) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE role = ?`, role).Scan(&n)
	return n, err
}
