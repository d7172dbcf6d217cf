package reservation_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/class"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/kakao"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/membership"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/reservation"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(db *gorm.DB) *reservation.ReservationService {
	clock, loc := testutil.Clock(), testutil.Seoul()

	classRepo := class.NewClassRepository()
	classService := class.NewClassService(db, classRepo, clock, loc)
	membershipService := membership.NewMembershipService(db, membership.NewMembershipRepository(), clock, loc)
	kakaoService := kakao.NewKakaoService(db, kakao.NewKakaoRepository(), membershipService, clock)

	return reservation.NewReservationService(db, reservation.NewReservationRepository(), classRepo, classService, kakaoService, clock, loc)
}

func newRouter(db *gorm.DB) *gin.Engine {
	reservationHandler := reservation.NewReservationHandler(newService(db))

	router := testutil.SetupTestRouter()
	router.POST("/api/reservation", reservationHandler.Book)
	router.POST("/api/reservation/cancel", reservationHandler.Cancel)
	router.GET("/api/reservation/classes", reservationHandler.AvailableClasses)
	router.GET("/api/reservation/my", reservationHandler.MyReservations)
	return router
}

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	return newRouter(db), db
}

func createClass(t *testing.T, db *gorm.DB, date string, capacity int) *model.Class {
	t.Helper()

	d, err := dateutil.Parse(date)
	require.NoError(t, err)

	c := &model.Class{Title: "필라테스", ClassDate: d, StartTime: "10:00", EndTime: "10:50", Capacity: capacity}
	testutil.MustCreate(t, db, c)
	return c
}

func book(t *testing.T, router *gin.Engine, body reservation.BookRequest) testutil.Envelope {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/reservation",
		Body:   body,
	})
	env := testutil.ParseData(t, recorder, nil)
	if env.Success {
		require.Equal(t, http.StatusCreated, recorder.Code)
	}
	return env
}

func TestBook_Success(t *testing.T) {
	router, db := setupTestEnvironment(t)
	c := createClass(t, db, "2026-10-20", 4)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/reservation",
		Body:   reservation.BookRequest{ClassID: c.ID, Name: "홍길동", Phone: "01012345678"},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var response reservation.ReservationResponse
	env := testutil.ParseData(t, recorder, &response)
	assert.True(t, env.Success)
	assert.Equal(t, c.ID, response.ClassID)
	assert.Equal(t, "010-1234-5678", response.Phone)
	assert.Equal(t, model.AttendancePending, response.AttendanceStatus)
	assert.Equal(t, "2026-10-20", response.ClassDate)
	assert.Nil(t, response.MemberID)
}

func TestBook_FillsMemberFromKakaoMapping(t *testing.T) {
	router, db := setupTestEnvironment(t)
	c := createClass(t, db, "2026-10-20", 4)
	m := model.NewMember("홍길동", "010-1234-5678")
	testutil.MustCreate(t, db, m)
	testutil.MustCreate(t, db, &model.KakaoUserMapping{KakaoUserID: "kakao-1", MemberID: m.ID})

	var response reservation.ReservationResponse
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/reservation",
		Body:   reservation.BookRequest{ClassID: c.ID, Name: "홍길동", Phone: "010-1234-5678", KakaoUserID: "kakao-1"},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	testutil.ParseData(t, recorder, &response)

	require.NotNil(t, response.MemberID)
	assert.Equal(t, m.ID, *response.MemberID)
}

func TestBook_CapacityReachedRejectsNextBooking(t *testing.T) {
	router, db := setupTestEnvironment(t)
	c := createClass(t, db, "2026-10-20", 2)

	assert.True(t, book(t, router, reservation.BookRequest{ClassID: c.ID, Name: "일번", Phone: "010-0000-0001"}).Success)
	assert.True(t, book(t, router, reservation.BookRequest{ClassID: c.ID, Name: "이번", Phone: "010-0000-0002"}).Success)

	env := book(t, router, reservation.BookRequest{ClassID: c.ID, Name: "삼번", Phone: "010-0000-0003"})
	assert.False(t, env.Success)
	assert.Equal(t, "RESERVATION-002", env.Code)
	assert.Equal(t, int64(2), testutil.CountRows(t, db, &model.Reservation{}, "class_id = ?", c.ID))
}

func TestBook_ConcurrentRequestsNeverExceedCapacity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	service := newService(db)
	c := createClass(t, db, "2026-10-20", 3)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.Book(context.Background(), &reservation.BookRequest{
				ClassID: c.ID,
				Name:    fmt.Sprintf("회원%d", i),
				Phone:   fmt.Sprintf("010-1000-%04d", i),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	booked, full := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			booked++
		case errors.Is(err, reservation.ErrFullyBooked):
			full++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 3, booked)
	assert.Equal(t, attempts-3, full)
	assert.Equal(t, int64(3), testutil.CountRows(t, db, &model.Reservation{}, "class_id = ?", c.ID))
}

func TestBook_Rejections(t *testing.T) {
	router, db := setupTestEnvironment(t)
	upcoming := createClass(t, db, "2026-10-20", 4)
	past := createClass(t, db, "2026-10-17", 4)
	testutil.MustCreate(t, db, &model.Reservation{ClassID: upcoming.ID, Name: "홍길동", Phone: "010-1234-5678", KakaoUserID: strPtr("kakao-1")})

	testCases := []struct {
		name   string
		body   reservation.BookRequest
		status int
		code   string
	}{
		{
			name:   "same phone without hyphens",
			body:   reservation.BookRequest{ClassID: upcoming.ID, Name: "홍길동", Phone: "01012345678"},
			status: http.StatusConflict,
			code:   "RESERVATION-003",
		},
		{
			name:   "same kakao user with another phone",
			body:   reservation.BookRequest{ClassID: upcoming.ID, Name: "홍길동", Phone: "010-9999-9999", KakaoUserID: "kakao-1"},
			status: http.StatusConflict,
			code:   "RESERVATION-003",
		},
		{
			name:   "past class",
			body:   reservation.BookRequest{ClassID: past.ID, Name: "김철수", Phone: "010-2222-3333"},
			status: http.StatusBadRequest,
			code:   "RESERVATION-005",
		},
		{
			name:   "unknown class",
			body:   reservation.BookRequest{ClassID: 999, Name: "김철수", Phone: "010-2222-3333"},
			status: http.StatusNotFound,
			code:   "RESERVATION-004",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/reservation",
				Body:   tc.body,
			})

			assert.Equal(t, tc.status, recorder.Code)
			env := testutil.ParseData(t, recorder, nil)
			assert.False(t, env.Success)
			assert.Equal(t, tc.code, env.Code)
		})
	}
}

func TestCancel_MissingReservationIDNeverTouchesDatabase(t *testing.T) {
	db, mock := testutil.SetupMockDB(t)
	router := newRouter(db)

	for _, body := range []string{`{}`, `{"reservation_id": null}`, `{"kakao_user_id": "kakao-1"}`} {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodPost,
			URL:    "/api/reservation/cancel",
			Body:   body,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code, body)
		env := testutil.ParseData(t, recorder, nil)
		assert.False(t, env.Success)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	router, db := setupTestEnvironment(t)
	c := createClass(t, db, "2026-10-20", 4)
	mine := &model.Reservation{ClassID: c.ID, Name: "홍길동", Phone: "010-1234-5678", KakaoUserID: strPtr("kakao-1")}
	testutil.MustCreate(t, db, mine)

	cancel := func(body reservation.CancelRequest) (int, testutil.Envelope) {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodPost,
			URL:    "/api/reservation/cancel",
			Body:   body,
		})
		return recorder.Code, testutil.ParseData(t, recorder, nil)
	}

	status, env := cancel(reservation.CancelRequest{ReservationID: mine.ID, KakaoUserID: "kakao-2"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "RESERVATION-006", env.Code)

	status, env = cancel(reservation.CancelRequest{ReservationID: mine.ID, KakaoUserID: "kakao-1"})
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, int64(0), testutil.CountRows(t, db, &model.Reservation{}, ""))

	status, env = cancel(reservation.CancelRequest{ReservationID: mine.ID})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "RESERVATION-001", env.Code)
}

func TestAvailableClasses_HidesPastClasses(t *testing.T) {
	router, db := setupTestEnvironment(t)
	createClass(t, db, "2026-10-17", 4)
	today := createClass(t, db, "2026-10-18", 1)
	later := createClass(t, db, "2026-10-25", 4)
	testutil.MustCreate(t, db, &model.Reservation{ClassID: today.ID, Name: "홍길동", Phone: "010-1234-5678"})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/reservation/classes?from=2026-10-01&to=2026-10-31",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var classes []class.ClassResponse
	testutil.ParseData(t, recorder, &classes)
	require.Len(t, classes, 2)
	assert.Equal(t, today.ID, classes[0].ID)
	assert.Equal(t, 0, classes[0].RemainingSeats)
	assert.Equal(t, later.ID, classes[1].ID)
	assert.Equal(t, 4, classes[1].RemainingSeats)
}

func TestMyReservations(t *testing.T) {
	router, db := setupTestEnvironment(t)
	past := createClass(t, db, "2026-10-10", 4)
	upcoming := createClass(t, db, "2026-10-21", 4)
	testutil.MustCreate(t, db,
		&model.Reservation{ClassID: past.ID, Name: "홍길동", Phone: "010-1234-5678", KakaoUserID: strPtr("kakao-1")},
		&model.Reservation{ClassID: upcoming.ID, Name: "홍길동", Phone: "010-1234-5678", KakaoUserID: strPtr("kakao-1")},
		&model.Reservation{ClassID: upcoming.ID, Name: "김철수", Phone: "010-2222-3333", KakaoUserID: strPtr("kakao-2")},
	)

	var mine []reservation.ReservationResponse
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/reservation/my?kakao_user_id=kakao-1"})
	require.Equal(t, http.StatusOK, recorder.Code)
	testutil.ParseData(t, recorder, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, upcoming.ID, mine[0].ClassID)
	assert.Equal(t, "필라테스", mine[0].ClassTitle)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/reservation/my?kakao_user_id=kakao-1&include_past=true"})
	require.Equal(t, http.StatusOK, recorder.Code)
	testutil.ParseData(t, recorder, &mine)
	assert.Len(t, mine, 2)

	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{Method: http.MethodGet, URL: "/api/reservation/my"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func strPtr(s string) *string {
	return &s
}
