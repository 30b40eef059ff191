package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> GET /admin/stats. Reservation counts per status
// (optionally scoped to ?date=) and free/occupied table counts.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	reservationCounts := map[string]int64{}
	for _, status := range []models.ReservationStatus{
		models.StatusBooked, models.StatusSeated, models.StatusFinished, models.StatusCancelled,
	} {
		query := ac.DB.Model(&models.Reservation{}).Where("status = ?", status)
		if date := c.Query("date"); date != "" {
			query = query.Where("reservation_date = ?", date)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			utils.RespondError(c, err)
			return
		}
		reservationCounts[string(status)] = count
	}

	var freeTables, occupiedTables int64
	if err := ac.DB.Model(&models.Table{}).Where("reservation_id IS NULL").Count(&freeTables).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := ac.DB.Model(&models.Table{}).Where("reservation_id IS NOT NULL").Count(&occupiedTables).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{
		"reservations": reservationCounts,
		"tables": gin.H{
			"free":     freeTables,
			"occupied": occupiedTables,
			"total":    freeTables + occupiedTables,
		},
	})
}
