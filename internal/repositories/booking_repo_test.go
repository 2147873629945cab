package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"gocart-admin/internal/domain"
	"gocart-admin/internal/domain/models"
)

func TestBookingUpdateOverwritesEditableFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}

	mock.ExpectExec("UPDATE bookings SET").
		WithArgs(int64(3), int64(1), int64(2), 45.0, "on hold", "TXN-9", int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(models.Booking{
		ID:            12,
		ScheduleID:    3,
		PickupStopID:  1,
		DropoffStopID: 2,
		Fare:          45.0,
		Status:        "on hold",
		PaymentRef:    "TXN-9",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}

	mock.ExpectQuery("FROM bookings WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReplaceSeatsFullReplace(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM booking_seats").
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WithArgs(int64(12), int64(5)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO booking_seats").
		WithArgs(int64(12), int64(6)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	if err := repo.ReplaceSeats(12, []int64{5, 6}); err != nil {
		t.Fatalf("ReplaceSeats returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingDeleteRemovesSeatsFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM booking_seats").
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM bookings").
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Delete(12); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
