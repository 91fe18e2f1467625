package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinica_back_end_go/models"

	"github.com/gin-gonic/gin"
)

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots()

	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "17:00" {
		t.Errorf("expected last slot 17:00, got %s", slots[len(slots)-1])
	}

	found := false
	for _, s := range slots {
		if s == "10:30" {
			found = true
		}
	}
	if !found {
		t.Error("expected 10:30 among the slots")
	}
}

func TestExcludeBookedSlots(t *testing.T) {
	slots := GenerateTimeSlots()
	booked := map[string]bool{"09:00": true, "10:30": true}

	free := ExcludeBookedSlots(slots, booked)
	if len(free) != 15 {
		t.Fatalf("expected 15 free slots, got %d", len(free))
	}
	for _, s := range free {
		if booked[s] {
			t.Errorf("booked slot %s still offered", s)
		}
	}
}

func TestFilterDoctorsBySpecialty(t *testing.T) {
	doctors := []models.Profile{
		{ID: "1", FullName: "Dra. García", Specialties: []string{"Cardiología"}},
		{ID: "2", FullName: "Dr. López", Specialties: []string{"Pediatría", "Consulta General"}},
		{ID: "3", FullName: "Dr. Sin Especialidad", Specialties: nil},
	}

	tests := []struct {
		name      string
		specialty string
		wantIDs   []string
	}{
		{"matching specialty", "Cardiología", []string{"1", "3"}},
		{"second specialty matches", "Consulta General", []string{"2", "3"}},
		{"no match keeps only unset", "Odontología", []string{"3"}},
		{"empty filter returns all", "", []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDoctorsBySpecialty(doctors, tt.specialty)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d doctors, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: expected doctor %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestCombineDateTime(t *testing.T) {
	// A Monday, booked at 10:30.
	when, err := CombineDateTime("2025-06-09", "10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if when.Weekday() != time.Monday {
		t.Errorf("expected a Monday, got %s", when.Weekday())
	}
	if when.Year() != 2025 || when.Month() != time.June || when.Day() != 9 {
		t.Errorf("unexpected date: %v", when)
	}
	if when.Hour() != 10 || when.Minute() != 30 {
		t.Errorf("expected 10:30, got %02d:%02d", when.Hour(), when.Minute())
	}
}

func TestCombineDateTimeInvalid(t *testing.T) {
	if _, err := CombineDateTime("09-06-2025", "10:30"); err == nil {
		t.Error("expected error for invalid date format")
	}
	if _, err := CombineDateTime("2025-06-09", "25:99"); err == nil {
		t.Error("expected error for invalid time")
	}
}

func TestValidID(t *testing.T) {
	if !ValidID("1b4e28ba-2fa1-11d2-883f-0016d3cca427") {
		t.Error("expected a well-formed uuid to be accepted")
	}
	for _, s := range []string{"", "abc", "123", "1b4e28ba-2fa1-11d2-883f"} {
		if ValidID(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestValidSpecialty(t *testing.T) {
	if !ValidSpecialty("Cardiología") {
		t.Error("expected Cardiología to be a known specialty")
	}
	if ValidSpecialty("Astrología") {
		t.Error("expected Astrología to be rejected")
	}
}

func TestGetSpecialtiesHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/specialties", GetSpecialties)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/specialties", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Specialties []string `json:"specialties"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Specialties) != 6 {
		t.Errorf("expected 6 specialties, got %d", len(body.Specialties))
	}
}

func TestGetTimeSlotsHandlerFullGrid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/slots", func(c *gin.Context) {
		GetTimeSlots(c, nil)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Slots []string `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Slots) != 17 {
		t.Errorf("expected the full 17-slot grid, got %d", len(body.Slots))
	}
}

func TestGetTimeSlotsRejectsMalformedDoctorID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/slots", func(c *gin.Context) {
		GetTimeSlots(c, nil)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots?doctorId=abc&date=2025-06-09", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed doctor id, got %d", w.Code)
	}
}

func TestCreateBookingRejectsInvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/appointments", func(c *gin.Context) {
		CreateBooking(c, nil)
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{}`},
		{"short name", `{"full_name":"An","email":"ana@x.com","specialty":"Cardiología","date":"2025-06-09","time":"10:30"}`},
		{"bad email", `{"full_name":"Ana Ruiz","email":"not-an-email","specialty":"Cardiología","date":"2025-06-09","time":"10:30"}`},
		{"unknown specialty", `{"full_name":"Ana Ruiz","email":"ana@x.com","specialty":"Astrología","date":"2025-06-09","time":"10:30"}`},
		{"bad date", `{"full_name":"Ana Ruiz","email":"ana@x.com","specialty":"Cardiología","date":"junio 9","time":"10:30"}`},
		{"malformed doctor id", `{"full_name":"Ana Ruiz","email":"ana@x.com","specialty":"Cardiología","date":"2025-06-09","time":"10:30","doctor_id":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}
