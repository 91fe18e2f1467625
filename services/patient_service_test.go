package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPatientRoutesRejectMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/admin/patients/:patientId", func(c *gin.Context) {
		GetPatientById(c, nil)
	})
	r.GET("/api/v1/admin/patients/:patientId/appointments", func(c *gin.Context) {
		GetPatientAppointments(c, nil)
	})
	r.DELETE("/api/v1/admin/patients/:patientId", func(c *gin.Context) {
		DeletePatient(c, nil)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/admin/patients/abc", nil),
		httptest.NewRequest(http.MethodGet, "/api/v1/admin/patients/abc/appointments", nil),
		httptest.NewRequest(http.MethodDelete, "/api/v1/admin/patients/abc", nil),
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", req.Method, req.URL.Path, w.Code)
		}
	}
}
