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

type ReservationController struct {
	Repo *repositories.ReservationRepo
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{Repo: repositories.NewReservationRepo(db)}
}

// reservationEnvelope is the {"data": {...}} request wrapper.
type reservationEnvelope struct {
	Data *validators.ReservationPayload `json:"data"`
}

// CreateReservation -> POST /reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var body reservationEnvelope
	if err := c.ShouldBindJSON(&body); err != nil || body.Data == nil {
		utils.RespondError(c, validators.ErrMissingPayload())
		return
	}

	if apiErr := validators.RunReservationRules(body.Data, validators.CreateReservationRules...); apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation := models.Reservation{
		FirstName:       body.Data.FirstName,
		LastName:        body.Data.LastName,
		MobileNumber:    body.Data.MobileNumber,
		ReservationDate: body.Data.ReservationDate,
		ReservationTime: body.Data.ReservationTime,
		People:          body.Data.PeopleCount(),
		Status:          models.StatusBooked,
	}

	if err := rc.Repo.Create(&reservation); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created for %s %s on %s %s",
		reservation.ID, reservation.FirstName, reservation.LastName,
		reservation.ReservationDate, reservation.ReservationTime)
	utils.RespondData(c, http.StatusCreated, reservation)
}

// ListReservations -> GET /reservations?date= or ?mobile_number=
func (rc *ReservationController) ListReservations(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		reservations, err := rc.Repo.ListByDate(date)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		utils.RespondData(c, http.StatusOK, reservations)
		return
	}

	if mobile := c.Query("mobile_number"); mobile != "" {
		reservations, err := rc.Repo.Search(mobile)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		utils.RespondData(c, http.StatusOK, reservations)
		return
	}

	utils.RespondData(c, http.StatusOK, []models.Reservation{})
}

// GetReservation -> GET /reservations/:reservation_id
func (rc *ReservationController) GetReservation(c *gin.Context) {
	reservation, apiErr := rc.findReservation(c.Param("reservation_id"))
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}
	utils.RespondData(c, http.StatusOK, reservation)
}

// UpdateReservation -> PUT /reservations/:reservation_id, full edit of the
// booking fields. The status field is left untouched.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var body reservationEnvelope
	if err := c.ShouldBindJSON(&body); err != nil || body.Data == nil {
		utils.RespondError(c, validators.ErrMissingPayload())
		return
	}

	if apiErr := validators.RunReservationRules(body.Data,
		validators.RequiredReservationFields,
		validators.ValidDate,
		validators.ValidTime,
		validators.ValidPeople,
	); apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation, apiErr := rc.findReservation(c.Param("reservation_id"))
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	if reservation.Finalized() {
		utils.RespondError(c, utils.ConflictError("Reservation status is already finished and cannot be updated."))
		return
	}

	if apiErr := validators.RunReservationRules(body.Data,
		validators.NotOnTuesday,
		validators.InFuture,
		validators.DuringBusinessHours,
	); apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	reservation.FirstName = body.Data.FirstName
	reservation.LastName = body.Data.LastName
	reservation.MobileNumber = body.Data.MobileNumber
	reservation.ReservationDate = body.Data.ReservationDate
	reservation.ReservationTime = body.Data.ReservationTime
	reservation.People = body.Data.PeopleCount()

	if err := rc.Repo.Update(reservation); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, reservation)
}

// UpdateReservationStatus -> PUT /reservations/:reservation_id/status.
// Seating is only reachable through the table seat operation, which is where
// the capacity and occupancy checks live.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var body struct {
		Data *struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Data == nil {
		utils.RespondError(c, validators.ErrMissingPayload())
		return
	}

	reservation, apiErr := rc.findReservation(c.Param("reservation_id"))
	if apiErr != nil {
		utils.RespondError(c, apiErr)
		return
	}

	status := models.ReservationStatus(body.Data.Status)
	if !status.Known() {
		utils.RespondError(c, utils.ValidationError("unknown status. status must be booked, seated, or finished."))
		return
	}

	if reservation.Finalized() {
		utils.RespondError(c, utils.ConflictError("Reservation status is already finished and cannot be updated."))
		return
	}

	if status == models.StatusSeated {
		utils.RespondError(c, utils.ConflictError("A reservation can only be seated by assigning it to a table."))
		return
	}

	reservation.Status = status
	if err := rc.Repo.Update(reservation); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d status changed to %s", reservation.ID, reservation.Status)
	utils.RespondData(c, http.StatusOK, reservation)
}

// findReservation loads the reservation named by a path parameter.
func (rc *ReservationController) findReservation(idStr string) (*models.Reservation, *utils.APIError) {
	notFound := utils.NotFoundError(fmt.Sprintf("Reservation %s does not exist.", idStr))

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return nil, notFound
	}

	reservation, err := rc.Repo.Read(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, utils.PersistenceError(err)
	}
	return reservation, nil
}
