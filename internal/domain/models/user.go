package models

// Role tags for User records. Staff access is governed by IsStaff, not Role.
const (
	RoleDriver  = "driver"
	RoleStudent = "student"
	RoleStaff   = "staff"
)

// User covers every identity in the platform: drivers, students and staff.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	PasswordHash   string `json:"-"`
	Role           string `json:"role"`
	IsStaff        bool   `json:"isStaff"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Gender         string `json:"gender"`
	DOB            string `json:"dob"`
	PresentAddress string `json:"presentAddress"`
	PostalCode     string `json:"postalCode"`
	HomeDistrict   string `json:"homeDistrict"`
	Nationality    string `json:"nationality"`
	NIDCardNo      string `json:"nidCardNo"`
	ProfilePicture string `json:"profilePicture"`
	CreatedAt      string `json:"createdAt"`
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
