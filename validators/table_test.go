package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRequiredFields(t *testing.T) {
	p := &TablePayload{}
	err := RequiredTableFields(p)
	assert.NotNil(t, err)
	assert.Equal(t, "Missing field: table_name.", err.Message)

	p.TableName = "Bar #1"
	assert.Equal(t, "Missing field: capacity.", RequiredTableFields(p).Message)

	p.Capacity = float64(6)
	assert.Nil(t, RequiredTableFields(p))
}

func TestTableNameLength(t *testing.T) {
	p := &TablePayload{TableName: "A", Capacity: float64(4)}
	err := TableNameLength(p)
	assert.NotNil(t, err)
	assert.Equal(t, "table_name must be at least 2 characters long.", err.Message)

	p.TableName = "A1"
	assert.Nil(t, TableNameLength(p))
}

func TestValidCapacity(t *testing.T) {
	p := &TablePayload{TableName: "A1", Capacity: "four"}
	err := ValidCapacity(p)
	assert.NotNil(t, err)
	assert.Equal(t, "capacity must be a number.", err.Message)

	p.Capacity = float64(4)
	assert.Nil(t, ValidCapacity(p))
	assert.Equal(t, 4, p.CapacityCount())
}

func TestReservationRef(t *testing.T) {
	_, err := ReservationRef(&SeatPayload{})
	assert.NotNil(t, err)
	assert.Equal(t, "Missing field: reservation_id.", err.Message)

	id, err := ReservationRef(&SeatPayload{ReservationID: float64(7)})
	assert.Nil(t, err)
	assert.Equal(t, uint(7), id)
}
