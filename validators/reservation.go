package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

// ReservationPayload is the data envelope of a reservation create or full
// edit request. People is decoded loosely so that a non-numeric value can be
// reported by the party-size rule instead of failing the bind.
type ReservationPayload struct {
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	MobileNumber    string      `json:"mobile_number"`
	ReservationDate string      `json:"reservation_date"`
	ReservationTime string      `json:"reservation_time"`
	People          interface{} `json:"people"`
	Status          string      `json:"status"`
}

// PeopleCount returns the party size. Only meaningful after ValidPeople has
// passed.
func (p *ReservationPayload) PeopleCount() int {
	n, _ := finiteNumber(p.People)
	return int(n)
}

// ReservationRule checks one aspect of a reservation payload.
type ReservationRule func(*ReservationPayload) *utils.APIError

// RunReservationRules applies the rules in order and returns the first
// failure.
func RunReservationRules(p *ReservationPayload, rules ...ReservationRule) *utils.APIError {
	for _, rule := range rules {
		if err := rule(p); err != nil {
			return err
		}
	}
	return nil
}

// CreateReservationRules is the full chain for POST /reservations.
var CreateReservationRules = []ReservationRule{
	RequiredReservationFields,
	ValidDate,
	ValidTime,
	ValidPeople,
	NotOnTuesday,
	InFuture,
	DuringBusinessHours,
	InitialStatusBooked,
}

// EditReservationRules is the shape portion of the chain for
// PUT /reservations/:reservation_id; the existence and finished checks run
// against the stored record in the handler.
var EditReservationRules = []ReservationRule{
	RequiredReservationFields,
	ValidDate,
	ValidTime,
	ValidPeople,
	NotOnTuesday,
	InFuture,
	DuringBusinessHours,
}

// requiredReservationFields is checked in this order; the first absent field
// is the one reported.
var requiredReservationFields = []struct {
	name  string
	value func(*ReservationPayload) interface{}
}{
	{"first_name", func(p *ReservationPayload) interface{} { return p.FirstName }},
	{"last_name", func(p *ReservationPayload) interface{} { return p.LastName }},
	{"mobile_number", func(p *ReservationPayload) interface{} { return p.MobileNumber }},
	{"reservation_date", func(p *ReservationPayload) interface{} { return p.ReservationDate }},
	{"reservation_time", func(p *ReservationPayload) interface{} { return p.ReservationTime }},
	{"people", func(p *ReservationPayload) interface{} { return p.People }},
}

func RequiredReservationFields(p *ReservationPayload) *utils.APIError {
	for _, field := range requiredReservationFields {
		if missing(field.value(p)) {
			return utils.ValidationError(fmt.Sprintf("Missing field: %s.", field.name))
		}
	}
	return nil
}

func ValidDate(p *ReservationPayload) *utils.APIError {
	if _, err := time.Parse("2006-01-02", p.ReservationDate); err != nil {
		return utils.ValidationError("reservation_date is not a valid date.")
	}
	return nil
}

// timePattern is deliberately a substring match, not an anchored one; a
// value like "13:30:00" passes and its first HH:MM group is used.
var timePattern = regexp.MustCompile(`[0-9]{2}:[0-9]{2}`)

func ValidTime(p *ReservationPayload) *utils.APIError {
	if !timePattern.MatchString(p.ReservationTime) {
		return utils.ValidationError("reservation_time is not a valid time.")
	}
	return nil
}

func ValidPeople(p *ReservationPayload) *utils.APIError {
	if _, ok := finiteNumber(p.People); !ok {
		return utils.ValidationError("people is not a valid number.")
	}
	return nil
}

// reservedAt combines the date and time fields into a wall-clock instant.
// Only valid after ValidDate and ValidTime have passed.
func (p *ReservationPayload) reservedAt() time.Time {
	hhmm := timePattern.FindString(p.ReservationTime)
	at, _ := time.ParseInLocation("2006-01-02T15:04", p.ReservationDate+"T"+hhmm, time.Local)
	return at
}

// NotOnTuesday enforces the weekly closure day.
func NotOnTuesday(p *ReservationPayload) *utils.APIError {
	if p.reservedAt().Weekday() == time.Tuesday {
		return utils.ConflictError("The restaurant is closed on Tuesdays.")
	}
	return nil
}

// InFuture requires the combined date and time to be strictly ahead of now.
func InFuture(p *ReservationPayload) *utils.APIError {
	if !p.reservedAt().After(time.Now()) {
		return utils.ConflictError("The reservation time and date must be in the future.")
	}
	return nil
}

// DuringBusinessHours keeps the time inside the 10:30-21:30 window, compared
// as an HHMM integer.
func DuringBusinessHours(p *ReservationPayload) *utils.APIError {
	hhmm := timePattern.FindString(p.ReservationTime)
	clock, _ := strconv.Atoi(strings.Replace(hhmm, ":", "", 1))

	if clock < 1030 {
		return utils.ConflictError("The restaurant is not open until 10:30am.")
	}
	if clock > 2130 {
		return utils.ConflictError("The restaurant closes at 10:30pm.")
	}
	return nil
}

// InitialStatusBooked rejects any creation status other than booked; an
// omitted status is fine.
func InitialStatusBooked(p *ReservationPayload) *utils.APIError {
	if p.Status != "" && p.Status != string(models.StatusBooked) {
		return utils.ValidationError(fmt.Sprintf("Status cannot be %s for new reservations.", p.Status))
	}
	return nil
}
