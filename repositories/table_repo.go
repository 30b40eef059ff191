package repositories

import (
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
)

// TableRepo is the data access layer for tables, including the paired
// table/reservation writes of the seat and finish operations.
type TableRepo struct {
	DB *gorm.DB
}

func NewTableRepo(db *gorm.DB) *TableRepo {
	return &TableRepo{DB: db}
}

func (r *TableRepo) Create(table *models.Table) error {
	return r.DB.Create(table).Error
}

// Read returns the table or gorm.ErrRecordNotFound.
func (r *TableRepo) Read(id uint) (*models.Table, error) {
	var table models.Table
	if err := r.DB.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// List returns all tables, name ascending.
func (r *TableRepo) List() ([]models.Table, error) {
	var out []models.Table
	err := r.DB.Order("table_name asc").Find(&out).Error
	return out, err
}

func (r *TableRepo) Update(table *models.Table) error {
	return r.DB.Save(table).Error
}

// Seat points the table at the reservation and marks the reservation seated,
// in one transaction so the two records cannot disagree about occupancy.
func (r *TableRepo) Seat(table *models.Table, res *models.Reservation) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		table.ReservationID = &res.ID
		if err := tx.Save(table).Error; err != nil {
			return err
		}

		res.Status = models.StatusSeated
		return tx.Save(res).Error
	})
}

// Finish marks the occupying reservation finished and frees the table, in
// one transaction. The caller guarantees the table is occupied.
func (r *TableRepo) Finish(table *models.Table) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, *table.ReservationID).Error; err != nil {
			return err
		}

		res.Status = models.StatusFinished
		if err := tx.Save(&res).Error; err != nil {
			return err
		}

		table.ReservationID = nil
		return tx.Save(table).Error
	})
}
