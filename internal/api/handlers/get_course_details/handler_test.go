package get_course_details

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdvisingService/internal/service/bookings"
	"github.com/m04kA/SMC-AdvisingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{}

func (fakeService) CourseDetails(_ context.Context, name string) (*models.CourseDetailsResponse, error) {
	if name != "Computer Science" {
		return nil, bookings.ErrCourseNotFound
	}
	return &models.CourseDetailsResponse{Course: name, TotalSlots: 120, AvailableSlots: 120, ByDate: []models.DateAppointments{}}, nil
}

func TestHandle(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/faculty/courses/{courseName}", NewHandler(fakeService{}, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/faculty/courses/Computer%20Science", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalSlots":120`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/faculty/courses/Astrology", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
