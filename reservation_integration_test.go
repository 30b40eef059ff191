package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/router"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestReservationLifecycleIntegration walks the main flow end to end:
// book a reservation, create a table, seat the reservation, finish the
// table, and verify the terminal state is immutable.
func TestReservationLifecycleIntegration(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	date := time.Now().AddDate(0, 0, 1)
	for date.Weekday() == time.Tuesday {
		date = date.AddDate(0, 0, 1)
	}

	// 1. Book
	w := request(r, "POST", "/reservations", map[string]interface{}{
		"data": map[string]interface{}{
			"first_name":       "Ada",
			"last_name":        "Lovelace",
			"mobile_number":    "555-0100",
			"reservation_date": date.Format("2006-01-02"),
			"reservation_time": "18:30",
			"people":           4,
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	reservationID := dataField(t, w, "reservation_id")

	// 2. Create a table
	w = request(r, "POST", "/tables", map[string]interface{}{
		"data": map[string]interface{}{"table_name": "Window 1", "capacity": 6},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	tableID := dataField(t, w, "table_id")

	// 3. Seat
	w = request(r, "PUT", fmt.Sprintf("/tables/%.0f/seat", tableID), map[string]interface{}{
		"data": map[string]interface{}{"reservation_id": reservationID},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var res models.Reservation
	db.First(&res, uint(reservationID))
	assert.Equal(t, models.StatusSeated, res.Status)

	// 4. The dashboard still lists the seated reservation for the date
	w = request(r, "GET", "/reservations?date="+date.Format("2006-01-02"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// 5. Finish the table
	w = request(r, "DELETE", fmt.Sprintf("/tables/%.0f/seat", tableID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	db.First(&res, uint(reservationID))
	assert.Equal(t, models.StatusFinished, res.Status)

	var table models.Table
	db.First(&table, uint(tableID))
	assert.Nil(t, table.ReservationID)

	// 6. Finished is terminal: edits and status changes are rejected
	w = request(r, "PUT", fmt.Sprintf("/reservations/%.0f/status", reservationID), map[string]interface{}{
		"data": map[string]interface{}{"status": "cancelled"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 7. And the finished reservation no longer shows on the date listing
	w = request(r, "GET", "/reservations?date="+date.Format("2006-01-02"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Data []models.Reservation `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Empty(t, listing.Data)
}

func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Reservation{}, &models.Table{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func request(r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	body := bytes.NewBuffer(nil)
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	}

	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// dataField pulls one numeric field out of a {"data": {...}} response.
func dataField(t *testing.T, w *httptest.ResponseRecorder, field string) float64 {
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	value, ok := resp.Data[field].(float64)
	if !ok {
		t.Fatalf("response data has no numeric %q field: %v", field, resp.Data)
	}
	return value
}
