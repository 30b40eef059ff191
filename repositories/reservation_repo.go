package repositories

import (
	"regexp"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
)

// ReservationRepo is the data access layer for reservations. All operations
// are thin pass-throughs onto the store; the transactional seat/finish pair
// lives on TableRepo.
type ReservationRepo struct {
	DB *gorm.DB
}

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{DB: db}
}

func (r *ReservationRepo) Create(res *models.Reservation) error {
	return r.DB.Create(res).Error
}

// Read returns the reservation or gorm.ErrRecordNotFound.
func (r *ReservationRepo) Read(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// ListByDate returns the reservations for one date, time ascending, leaving
// out terminal ones so the dashboard only shows actionable bookings.
func (r *ReservationRepo) ListByDate(date string) ([]models.Reservation, error) {
	var out []models.Reservation
	err := r.DB.
		Where("reservation_date = ?", date).
		Where("status NOT IN ?", []models.ReservationStatus{models.StatusFinished, models.StatusCancelled}).
		Order("reservation_time asc").
		Find(&out).Error
	return out, err
}

var nonDigits = regexp.MustCompile(`\D`)

// Search matches a phone fragment against the stored numbers with all
// punctuation stripped on both sides, regardless of status, date ascending.
func (r *ReservationRepo) Search(mobileNumber string) ([]models.Reservation, error) {
	fragment := nonDigits.ReplaceAllString(mobileNumber, "")

	var out []models.Reservation
	err := r.DB.
		Where(
			"replace(replace(replace(replace(mobile_number, '(', ''), ')', ''), '-', ''), ' ', '') LIKE ?",
			"%"+fragment+"%",
		).
		Order("reservation_date asc").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepo) Update(res *models.Reservation) error {
	return r.DB.Save(res).Error
}
