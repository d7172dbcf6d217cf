package attendance_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/attendance"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/class"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/reservation"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	attendanceService := attendance.NewAttendanceService(db, reservation.NewReservationRepository(), class.NewClassRepository(), testutil.Clock())
	attendanceHandler := attendance.NewAttendanceHandler(attendanceService)

	router := testutil.SetupTestRouter()
	router.POST("/api/attendance/update", attendanceHandler.Update)
	router.GET("/api/classes/:id/attendance", attendanceHandler.Roster)

	return router, db
}

func seedReservation(t *testing.T, db *gorm.DB) (*model.Class, *model.Reservation) {
	t.Helper()

	c := &model.Class{Title: "필라테스", StartTime: "10:00", EndTime: "10:50", Capacity: 4}
	testutil.MustCreate(t, db, c)
	r := &model.Reservation{ClassID: c.ID, Name: "홍길동", Phone: "010-1234-5678"}
	testutil.MustCreate(t, db, r)
	return c, r
}

func TestUpdate_StampsStatusAndCheckedAt(t *testing.T) {
	router, db := setupTestEnvironment(t)
	_, r := seedReservation(t, db)
	checkedBy := "김강사"

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/attendance/update",
		Body:   attendance.UpdateRequest{ReservationID: r.ID, AttendanceStatus: model.AttendanceAttended, CheckedBy: &checkedBy},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var response attendance.AttendanceResponse
	env := testutil.ParseData(t, recorder, &response)
	assert.True(t, env.Success)
	assert.Equal(t, r.ID, response.ReservationID)
	assert.Equal(t, model.AttendanceAttended, response.AttendanceStatus)
	require.NotNil(t, response.AttendanceCheckedAt)
	assert.True(t, response.AttendanceCheckedAt.Equal(testutil.Now))
	require.NotNil(t, response.AttendanceCheckedBy)
	assert.Equal(t, "김강사", *response.AttendanceCheckedBy)

	var stored model.Reservation
	require.NoError(t, db.First(&stored, r.ID).Error)
	assert.Equal(t, model.AttendanceAttended, stored.AttendanceStatus)
	require.NotNil(t, stored.AttendanceCheckedAt)
}

func TestUpdate_AnyTransitionAllowed(t *testing.T) {
	router, db := setupTestEnvironment(t)
	_, r := seedReservation(t, db)

	for _, status := range []string{model.AttendanceAbsent, model.AttendanceAttended, model.AttendancePending} {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodPost,
			URL:    "/api/attendance/update",
			Body:   attendance.UpdateRequest{ReservationID: r.ID, AttendanceStatus: status},
		})
		require.Equal(t, http.StatusOK, recorder.Code, status)
	}
}

func TestUpdate_Rejections(t *testing.T) {
	router, db := setupTestEnvironment(t)
	_, r := seedReservation(t, db)

	testCases := []struct {
		name   string
		body   interface{}
		status int
	}{
		{name: "unknown status", body: map[string]interface{}{"reservation_id": r.ID, "attendance_status": "late"}, status: http.StatusBadRequest},
		{name: "missing status", body: map[string]interface{}{"reservation_id": r.ID}, status: http.StatusBadRequest},
		{name: "missing reservation", body: map[string]interface{}{"attendance_status": "attended"}, status: http.StatusBadRequest},
		{name: "unknown reservation", body: attendance.UpdateRequest{ReservationID: 999, AttendanceStatus: "attended"}, status: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/attendance/update",
				Body:   tc.body,
			})
			assert.Equal(t, tc.status, recorder.Code)
		})
	}

	var stored model.Reservation
	require.NoError(t, db.First(&stored, r.ID).Error)
	assert.Equal(t, model.AttendancePending, stored.AttendanceStatus)
	assert.Nil(t, stored.AttendanceCheckedAt)
}

func TestRoster_CountsStatuses(t *testing.T) {
	router, db := setupTestEnvironment(t)
	c, first := seedReservation(t, db)
	testutil.MustCreate(t, db,
		&model.Reservation{ClassID: c.ID, Name: "김철수", Phone: "010-2222-3333", AttendanceStatus: model.AttendanceAbsent},
		&model.Reservation{ClassID: c.ID, Name: "이영희", Phone: "010-4444-5555", AttendanceStatus: model.AttendanceAttended},
	)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: fmt.Sprintf("/api/classes/%d/attendance", c.ID)})
	require.Equal(t, http.StatusOK, recorder.Code)

	var roster attendance.RosterResponse
	testutil.ParseData(t, recorder, &roster)
	require.Len(t, roster.Entries, 3)
	assert.Equal(t, first.ID, roster.Entries[0].ReservationID)
	assert.Equal(t, 1, roster.Attended)
	assert.Equal(t, 1, roster.Absent)
	assert.Equal(t, 1, roster.Pending)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/classes/999/attendance"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
