package instructor_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/instructor"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	instructorHandler := instructor.NewInstructorHandler(
		instructor.NewInstructorService(db, instructor.NewInstructorRepository()),
	)

	router := testutil.SetupTestRouter()
	router.GET("/api/instructors", instructorHandler.List)
	router.POST("/api/instructors", instructorHandler.Create)
	router.PUT("/api/instructors/:id", instructorHandler.Update)
	router.DELETE("/api/instructors/:id", instructorHandler.Delete)

	return router, db
}

func TestCreateInstructor_DefaultsToActive(t *testing.T) {
	router, _ := setupTestEnvironment(t)
	phone := "01012345678"

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/instructors",
		Body:   instructor.CreateInstructorRequest{Name: "김강사", Phone: &phone, PayPerClass: 35000},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response instructor.InstructorResponse
	testutil.ParseData(t, recorder, &response)
	assert.True(t, response.IsActive)
	require.NotNil(t, response.Phone)
	assert.Equal(t, "010-1234-5678", *response.Phone)
	assert.Equal(t, 35000, response.PayPerClass)
}

func TestCreateInstructor_NegativePay(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/instructors",
		Body:   map[string]interface{}{"name": "김강사", "pay_per_class": -1},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateInstructor_DeactivateAndFilter(t *testing.T) {
	router, db := setupTestEnvironment(t)
	kim := &model.Instructor{Name: "김강사", PayPerClass: 30000, IsActive: true}
	lee := &model.Instructor{Name: "이강사", PayPerClass: 30000, IsActive: true}
	testutil.MustCreate(t, db, kim, lee)

	inactive := false
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/instructors/%d", lee.ID),
		Body:   instructor.UpdateInstructorRequest{IsActive: &inactive},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var active []instructor.InstructorResponse
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/instructors?active_only=true"})
	require.Equal(t, http.StatusOK, recorder.Code)
	testutil.ParseData(t, recorder, &active)
	require.Len(t, active, 1)
	assert.Equal(t, kim.ID, active[0].ID)

	var all []instructor.InstructorResponse
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/instructors"})
	testutil.ParseData(t, recorder, &all)
	assert.Len(t, all, 2)
}

func TestDeleteInstructor_UnassignsClasses(t *testing.T) {
	router, db := setupTestEnvironment(t)
	kim := &model.Instructor{Name: "김강사", PayPerClass: 30000, IsActive: true}
	testutil.MustCreate(t, db, kim)
	testutil.MustCreate(t, db, &model.Class{Title: "요가", StartTime: "10:00", EndTime: "11:00", Capacity: 6, InstructorID: &kim.ID})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodDelete, URL: fmt.Sprintf("/api/instructors/%d", kim.ID)})
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, int64(0), testutil.CountRows(t, db, &model.Instructor{}, ""))
	assert.Equal(t, int64(1), testutil.CountRows(t, db, &model.Class{}, "instructor_id IS NULL"))

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodDelete, URL: fmt.Sprintf("/api/instructors/%d", kim.ID)})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
