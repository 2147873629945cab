package repositories

import "gocart-admin/internal/domain/models"

// Per-entity store contracts. Handlers program against these; the concrete
// implementations below run raw SQL against the shared MySQL connection.

type UserStore interface {
	GetByUsername(username string) (models.User, error)
	GetByID(id int64, role string) (models.User, error)
	GetAnyByID(id int64) (models.User, error)
	ListByRole(role string) ([]models.User, error)
	Update(u models.User, updatePicture bool) error
	Delete(id int64, role string) error
	CountByRole(role string) (int, error)
}

type GoCartStore interface {
	ListAll() ([]models.GoCart, error)
	GetByID(id int64) (models.GoCart, error)
	Create(g models.GoCart) (int64, error)
	Update(g models.GoCart) error
	Delete(id int64) error
	Count() (int, error)
}

type StopStore interface {
	ListAll() ([]models.Stop, error)
	GetByID(id int64) (models.Stop, error)
	Create(s models.Stop) (int64, error)
	Update(s models.Stop) error
	Delete(id int64) error
	Count() (int, error)
}

type RouteStore interface {
	ListAll() ([]models.Route, error)
	GetByID(id int64) (models.Route, error)
	Create(name string) (int64, error)
	UpdateName(id int64, name string) error
	ReplaceStops(routeID int64, stopIDs []int64) error
	Delete(id int64) error
	Count() (int, error)
}

type ScheduleStore interface {
	ListAll() ([]models.Schedule, error)
	GetByID(id int64) (models.Schedule, error)
	Create(s models.Schedule) (int64, error)
	Update(s models.Schedule) error
	Delete(id int64) error
	Count() (int, error)
}

type BookingStore interface {
	ListAll() ([]models.Booking, error)
	GetByID(id int64) (models.Booking, error)
	Update(b models.Booking) error
	ReplaceSeats(bookingID int64, seatIDs []int64) error
	Delete(id int64) error
	Count() (int, error)
}

type SeatLayoutStore interface {
	ListAll() ([]models.SeatLayout, error)
	ListByGoCart(gocartID int64) ([]models.SeatLayout, error)
}

type ContactStore interface {
	ListAll() ([]models.ContactMessage, error)
	GetByID(id int64) (models.ContactMessage, error)
	MarkReplied(id int64) error
	Delete(id int64) error
	Count() (int, error)
}

var (
	_ UserStore       = UserRepository{}
	_ GoCartStore     = GoCartRepository{}
	_ StopStore       = StopRepository{}
	_ RouteStore      = RouteRepository{}
	_ ScheduleStore   = ScheduleRepository{}
	_ BookingStore    = BookingRepository{}
	_ SeatLayoutStore = SeatLayoutRepository{}
	_ ContactStore    = ContactRepository{}
)
