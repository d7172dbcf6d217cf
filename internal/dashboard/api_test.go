package dashboard_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/class"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/dashboard"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/membership"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	clock, loc := testutil.Clock(), testutil.Seoul()

	classService := class.NewClassService(db, class.NewClassRepository(), clock, loc)
	dashboardService := dashboard.NewDashboardService(db, dashboard.NewDashboardRepository(), membership.NewMembershipRepository(), classService, clock, loc)
	dashboardHandler := dashboard.NewDashboardHandler(dashboardService)

	router := testutil.SetupTestRouter()
	router.GET("/api/dashboard/summary", dashboardHandler.Summary)
	router.GET("/api/dashboard/settlement", dashboardHandler.Settlement)
	router.GET("/api/dashboard/settlement/export", dashboardHandler.Export)

	return router, db
}

func mustDate(t *testing.T, s string) datatypes.Date {
	t.Helper()

	d, err := dateutil.Parse(s)
	require.NoError(t, err)
	return d
}

func datePtr(t *testing.T, s string) *datatypes.Date {
	d := mustDate(t, s)
	return &d
}

func intPtr(n int) *int {
	return &n
}

func createClass(t *testing.T, db *gorm.DB, date string, instructorID *uint32) *model.Class {
	t.Helper()

	c := &model.Class{
		Title:        "필라테스",
		ClassDate:    mustDate(t, date),
		StartTime:    "10:00",
		EndTime:      "10:50",
		Capacity:     6,
		InstructorID: instructorID,
	}
	testutil.MustCreate(t, db, c)
	return c
}

func reserve(t *testing.T, db *gorm.DB, classID uint32, status string) {
	t.Helper()

	testutil.MustCreate(t, db, &model.Reservation{
		ClassID:          classID,
		Name:             "홍길동",
		Phone:            "010-1234-5678",
		AttendanceStatus: status,
	})
}

// seedSettlementMonth creates two instructors in October plus one unassigned class
// and a class in November that must not be counted.
func seedSettlementMonth(t *testing.T, db *gorm.DB) (kim, lee *model.Instructor) {
	t.Helper()

	kim = &model.Instructor{Name: "김강사", PayPerClass: 30000, IsActive: true}
	lee = &model.Instructor{Name: "이강사", PayPerClass: 25000, IsActive: true}
	testutil.MustCreate(t, db, kim)
	testutil.MustCreate(t, db, lee)

	c1 := createClass(t, db, "2026-10-01", &kim.ID)
	c2 := createClass(t, db, "2026-10-31", &kim.ID)
	createClass(t, db, "2026-10-15", &lee.ID)
	c4 := createClass(t, db, "2026-10-20", nil)
	createClass(t, db, "2026-11-01", &kim.ID)

	reserve(t, db, c1.ID, model.AttendanceAttended)
	reserve(t, db, c1.ID, model.AttendanceAbsent)
	reserve(t, db, c2.ID, model.AttendancePending)
	reserve(t, db, c4.ID, model.AttendanceAttended)

	member := model.NewMember("홍길동", "010-1234-5678")
	testutil.MustCreate(t, db, member)
	testutil.MustCreate(t, db, &model.MembershipHistory{
		MemberID: member.ID, MembershipType: "10회권", StartDate: mustDate(t, "2026-10-05"),
		EndDate: datePtr(t, "2027-01-05"), TotalSessions: 10, RemainingSessions: intPtr(10), Price: 300000,
	})
	testutil.MustCreate(t, db, &model.MembershipHistory{
		MemberID: member.ID, MembershipType: "1회권", StartDate: mustDate(t, "2026-09-30"),
		EndDate: datePtr(t, "2026-10-30"), TotalSessions: 1, RemainingSessions: intPtr(1), Price: 35000,
	})
	return kim, lee
}

func TestSettlement_GroupsByInstructor(t *testing.T) {
	router, db := setupTestEnvironment(t)
	kim, lee := seedSettlementMonth(t, db)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/dashboard/settlement?month=2026-10",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var report dashboard.SettlementResponse
	testutil.ParseData(t, recorder, &report)

	assert.Equal(t, "2026-10", report.Month)
	require.Len(t, report.Instructors, 3)

	first := report.Instructors[0]
	require.NotNil(t, first.InstructorID)
	assert.Equal(t, kim.ID, *first.InstructorID)
	assert.Equal(t, 2, first.Classes)
	assert.Equal(t, 3, first.Reservations)
	assert.Equal(t, 1, first.Attended)
	assert.Equal(t, 1, first.Absent)
	assert.Equal(t, 60000, first.Pay)

	second := report.Instructors[1]
	assert.Equal(t, lee.ID, *second.InstructorID)
	assert.Equal(t, 1, second.Classes)
	assert.Equal(t, 0, second.Reservations)
	assert.Equal(t, 25000, second.Pay)

	unassigned := report.Instructors[2]
	assert.Nil(t, unassigned.InstructorID)
	assert.Equal(t, "미배정", unassigned.InstructorName)
	assert.Equal(t, 1, unassigned.Classes)
	assert.Equal(t, 0, unassigned.Pay)

	assert.Equal(t, 4, report.TotalClasses)
	assert.Equal(t, 85000, report.TotalPay)
	assert.Equal(t, dashboard.MembershipSales{Count: 1, Revenue: 300000}, report.MembershipSales)
}

func TestSettlement_DefaultsToCurrentMonth(t *testing.T) {
	router, db := setupTestEnvironment(t)
	testutil.MustCreate(t, db, &model.Instructor{Name: "퇴사강사", PayPerClass: 10000, IsActive: false})

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/dashboard/settlement",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var report dashboard.SettlementResponse
	testutil.ParseData(t, recorder, &report)
	assert.Equal(t, "2026-10", report.Month)
	assert.Empty(t, report.Instructors, "inactive instructors without classes are omitted")
	assert.Zero(t, report.TotalPay)
}

func TestSettlement_InvalidMonth(t *testing.T) {
	router, _ := setupTestEnvironment(t)

	for _, month := range []string{"2026-13", "202610", "october"} {
		recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
			Method: http.MethodGet,
			URL:    "/api/dashboard/settlement?month=" + month,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code, month)
	}
}

func TestExportSettlement_Xlsx(t *testing.T) {
	router, db := setupTestEnvironment(t)
	seedSettlementMonth(t, db)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/dashboard/settlement/export?month=2026-10",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=settlement-2026-10.xlsx", recorder.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"정산"}, f.GetSheetList())

	rows, err := f.GetRows("정산")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 8)
	assert.Equal(t, "2026-10 정산", rows[0][0])
	assert.Equal(t, "강사", rows[2][0])
	assert.Equal(t, []string{"김강사", "2", "3", "1", "1", "30000", "60000"}, rows[3])
	assert.Equal(t, "미배정", rows[5][0])
	assert.Equal(t, "합계", rows[6][0])
	assert.Equal(t, "85000", rows[6][6])

	revenue, err := f.GetCellValue("정산", "B10")
	require.NoError(t, err)
	assert.Equal(t, "300000", revenue)
}

func TestSummary(t *testing.T) {
	router, db := setupTestEnvironment(t)

	createClass(t, db, "2026-10-18", nil)
	createClass(t, db, "2026-10-19", nil)

	soon := model.NewMember("곧만료", "010-1111-1111")
	later := model.NewMember("여유", "010-2222-2222")
	expired := model.NewMember("만료됨", "010-3333-3333")
	none := model.NewTemporaryMember("카카오회원", "1234", "kakao-1")
	for _, m := range []*model.Member{soon, later, expired, none} {
		testutil.MustCreate(t, db, m)
	}

	histories := []model.MembershipHistory{
		{MemberID: soon.ID, MembershipType: "10회권", StartDate: mustDate(t, "2026-09-25"), EndDate: datePtr(t, "2026-10-25"), TotalSessions: 10, RemainingSessions: intPtr(2)},
		{MemberID: later.ID, MembershipType: "10회권", StartDate: mustDate(t, "2026-10-01"), EndDate: datePtr(t, "2026-12-31"), TotalSessions: 10, RemainingSessions: intPtr(8)},
		{MemberID: expired.ID, MembershipType: "10회권", StartDate: mustDate(t, "2026-08-01"), EndDate: datePtr(t, "2026-10-17"), TotalSessions: 10, RemainingSessions: intPtr(3)},
	}
	for i := range histories {
		testutil.MustCreate(t, db, &histories[i])
	}

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/dashboard/summary",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var summary dashboard.SummaryResponse
	testutil.ParseData(t, recorder, &summary)

	assert.Equal(t, "2026-10-18", summary.Date)
	require.Len(t, summary.TodayClasses, 1)
	assert.Equal(t, "2026-10-18", summary.TodayClasses[0].ClassDate)

	assert.Equal(t, dashboard.MemberCounts{
		Total:        4,
		Active:       2,
		Expired:      1,
		Unregistered: 1,
		Temporary:    1,
	}, summary.Members)

	require.Len(t, summary.ExpiringSoon, 1)
	assert.Equal(t, soon.ID, summary.ExpiringSoon[0].MemberID)
	assert.Equal(t, "2026-10-25", summary.ExpiringSoon[0].ExpiresAt)
}
