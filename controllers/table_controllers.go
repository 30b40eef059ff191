package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/repositories"
	"github.com/yeremiapane/restaurant-reservation/utils"
	"github.com/yeremiapane/restaurant-reservation/validators"
)

type TableController struct {
	Repo         *repositories.TableRepo
	Reservations *repositories.ReservationRepo
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{
		Repo:         repositories.NewTableRepo(db),
		Reservations: repositories.NewReservationRepo(db),
	}
}

// CreateTable -> POST /tables
func (tc *TableController) CreateTable(c *gin.Context) {
	var body struct {
		Data *validators.TablePayload `json:"data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Data == nil {
		utils.RespondError(c, validators.ErrMissingPayload())
		return
	}

	if apiErr := validators.RunTableRules(body.Data, validators.CreateTableRules...); apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	table := models.Table{
		TableName: body.Data.TableName,
		Capacity:  body.Data.CapacityCount(),
	}

	if err := tc.Repo.Create(&table); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d created: %s (capacity=%d)", table.ID, table.TableName, table.Capacity)
	utils.RespondData(c, http.StatusCreated, table)
}

// GetAllTables -> GET /tables, name ascending
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Repo.List()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, tables)
}

// SeatReservation -> PUT /tables/:table_id/seat. Checks run in a fixed
// order: payload, table exists, reservation exists, capacity, table free,
// reservation not already seated. The paired writes happen transactionally
// in the repository.
func (tc *TableController) SeatReservation(c *gin.Context) {
	var body struct {
		Data *validators.SeatPayload `json:"data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Data == nil {
		utils.RespondError(c, validators.ErrMissingPayload())
		return
	}

	reservationID, apiErr := validators.ReservationRef(body.Data)
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	table, apiErr := tc.findTable(c.Param("table_id"))
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation, err := tc.Reservations.Read(reservationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, utils.NotFoundError(fmt.Sprintf("Reservation %d does not exist.", reservationID)))
		return
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if table.Capacity < reservation.People {
		utils.RespondError(c, utils.ConflictError("Number of people exceeds table capacity."))
		return
	}

	if table.Occupied() {
		utils.RespondError(c, utils.ConflictError("Table is currently occupied."))
		return
	}

	if reservation.Status == models.StatusSeated {
		utils.RespondError(c, utils.ConflictError("Reservation is already seated."))
		return
	}

	if err := tc.Repo.Seat(table, reservation); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d seated at table %d (%s)", reservation.ID, table.ID, table.TableName)
	utils.RespondData(c, http.StatusOK, table)
}

// FinishTable -> DELETE /tables/:table_id/seat. Frees the table and marks
// its occupying reservation finished.
func (tc *TableController) FinishTable(c *gin.Context) {
	table, apiErr := tc.findTable(c.Param("table_id"))
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	if !table.Occupied() {
		utils.RespondError(c, utils.ConflictError("Table is not occupied."))
		return
	}

	finishedID := *table.ReservationID
	if err := tc.Repo.Finish(table); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d freed, reservation %d finished", table.ID, finishedID)
	utils.RespondData(c, http.StatusOK, table)
}

// findTable loads the table named by a path parameter.
func (tc *TableController) findTable(idStr string) (*models.Table, *utils.APIError) {
	notFound := utils.NotFoundError(fmt.Sprintf("Table %s does not exist.", idStr))

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return nil, notFound
	}

	table, err := tc.Repo.Read(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return table, nil
}
