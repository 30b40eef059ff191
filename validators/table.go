package validators

import (
	"fmt"

	"github.com/yeremiapane/restaurant-reservation/utils"
)

// TablePayload is the data envelope of a table creation request. Capacity is
// decoded loosely so a non-numeric value is reported by the capacity rule.
type TablePayload struct {
	TableName string      `json:"table_name"`
	Capacity  interface{} `json:"capacity"`
}

// CapacityCount returns the seat count. Only meaningful after ValidCapacity
// has passed.
func (p *TablePayload) CapacityCount() int {
	n, _ := finiteNumber(p.Capacity)
	return int(n)
}

type TableRule func(*TablePayload) *utils.APIError

func RunTableRules(p *TablePayload, rules ...TableRule) *utils.APIError {
	for _, rule := range rules {
		if err := rule(p); err != nil {
			return err
		}
	}
	return nil
}

// CreateTableRules is the chain for POST /tables.
var CreateTableRules = []TableRule{
	RequiredTableFields,
	TableNameLength,
	ValidCapacity,
}

var requiredTableFields = []struct {
	name  string
	value func(*TablePayload) interface{}
}{
	{"table_name", func(p *TablePayload) interface{} { return p.TableName }},
	{"capacity", func(p *TablePayload) interface{} { return p.Capacity }},
}

func RequiredTableFields(p *TablePayload) *utils.APIError {
	for _, field := range requiredTableFields {
		if missing(field.value(p)) {
			return utils.ValidationError(fmt.Sprintf("Missing field: %s.", field.name))
		}
	}
	return nil
}

func TableNameLength(p *TablePayload) *utils.APIError {
	if len(p.TableName) < 2 {
		return utils.ValidationError("table_name must be at least 2 characters long.")
	}
	return nil
}

func ValidCapacity(p *TablePayload) *utils.APIError {
	if _, ok := finiteNumber(p.Capacity); !ok {
		return utils.ValidationError("capacity must be a number.")
	}
	return nil
}

// SeatPayload is the data envelope of a seating request.
type SeatPayload struct {
	ReservationID interface{} `json:"reservation_id"`
}

// ReservationRef validates the seating payload and returns the referenced
// reservation id.
func ReservationRef(p *SeatPayload) (uint, *utils.APIError) {
	if missing(p.ReservationID) {
		return 0, utils.ValidationError("Missing field: reservation_id.")
	}
	n, ok := finiteNumber(p.ReservationID)
	if !ok || n < 0 {
		return 0, utils.ValidationError("reservation_id must be a number.")
	}
	return uint(n), nil
}
