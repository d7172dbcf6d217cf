package membership

import (
	"context"
	"testing"
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*MembershipService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	service := NewMembershipService(db, NewMembershipRepository(), testutil.Clock(), testutil.Seoul())
	return service, db
}

func strPtr(s string) *string {
	return &s
}

func reloadMember(t *testing.T, db *gorm.DB, id uint32) model.Member {
	t.Helper()

	var m model.Member
	require.NoError(t, db.First(&m, id).Error)
	return m
}

func TestPurchase_RefreshesMemberCache(t *testing.T) {
	service, db := setupService(t)
	member := model.NewMember("홍길동", "010-1234-5678")
	testutil.MustCreate(t, db, member)

	response, err := service.Purchase(context.Background(), member.ID, &PurchaseRequest{
		MembershipType: "10회권",
		StartDate:      "2026-10-01",
		EndDate:        strPtr("2026-12-31"),
		TotalSessions:  10,
		Price:          300000,
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, response.Status)
	require.NotNil(t, response.RemainingSessions)
	assert.Equal(t, 10, *response.RemainingSessions, "remaining defaults to total")

	cached := reloadMember(t, db, member.ID)
	assert.Equal(t, StatusActive, cached.MembershipStatus)
	require.NotNil(t, cached.RemainingSessions)
	assert.Equal(t, 10, *cached.RemainingSessions)
	require.NotNil(t, cached.ExpiresAt)
	assert.Equal(t, "2026-12-31", time.Time(*cached.ExpiresAt).Format("2006-01-02"))
}

func TestPurchase_EndBeforeStart(t *testing.T) {
	service, db := setupService(t)
	member := model.NewMember("홍길동", "010-1234-5678")
	testutil.MustCreate(t, db, member)

	_, err := service.Purchase(context.Background(), member.ID, &PurchaseRequest{
		MembershipType: "10회권",
		StartDate:      "2026-10-01",
		EndDate:        strPtr("2026-09-30"),
		TotalSessions:  10,
	}, 0)

	assert.ErrorIs(t, err, ErrInvalidPeriod)
	assert.Equal(t, int64(0), testutil.CountRows(t, db, &model.MembershipHistory{}, ""))
}

func TestPurchase_RequiresSessions(t *testing.T) {
	service, db := setupService(t)
	member := model.NewMember("홍길동", "010-1234-5678")
	testutil.MustCreate(t, db, member)

	_, err := service.Purchase(context.Background(), member.ID, &PurchaseRequest{
		MembershipType: "3개월권",
		StartDate:      "2026-10-01",
		EndDate:        strPtr("2026-12-31"),
	}, 0)

	assert.ErrorIs(t, err, ErrNoSessions)
	assert.Equal(t, int64(0), testutil.CountRows(t, db, &model.MembershipHistory{}, ""))
}

func TestPurchase_UnknownMember(t *testing.T) {
	service, _ := setupService(t)

	_, err := service.Purchase(context.Background(), 99, &PurchaseRequest{
		MembershipType: "10회권",
		StartDate:      "2026-10-01",
		TotalSessions:  10,
	}, 0)

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestAdjust_UsedUpSessionsExpireMember(t *testing.T) {
	service, db := setupService(t)
	member := model.NewMember("홍길동", "010-1234-5678")
	testutil.MustCreate(t, db, member)

	purchased, err := service.Purchase(context.Background(), member.ID, &PurchaseRequest{
		MembershipType: "10회권",
		StartDate:      "2026-10-01",
		EndDate:        strPtr("2026-12-31"),
		TotalSessions:  10,
	}, 0)
	require.NoError(t, err)

	adjusted, err := service.Adjust(context.Background(), purchased.ID, &AdjustRequest{
		RemainingSessions: sessions(0),
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, StatusExpired, adjusted.Status)
	assert.Equal(t, StatusExpired, reloadMember(t, db, member.ID).MembershipStatus)
}

func TestAdjust_NotFound(t *testing.T) {
	service, _ := setupService(t)

	_, err := service.Adjust(context.Background(), 42, &AdjustRequest{RemainingSessions: sessions(1)}, 0)
	assert.ErrorIs(t, err, ErrHistoryNotFound)
}

func TestListByMember_NewestFirstWithDerivedStatus(t *testing.T) {
	service, db := setupService(t)
	member := model.NewMember("홍길동", "010-1234-5678")
	testutil.MustCreate(t, db, member)

	testutil.MustCreate(t, db,
		&model.MembershipHistory{MemberID: member.ID, MembershipType: "old", StartDate: *date("2026-01-01"), EndDate: date("2026-03-31"), TotalSessions: 10, RemainingSessions: sessions(2)},
		&model.MembershipHistory{MemberID: member.ID, MembershipType: "new", StartDate: *date("2026-10-01"), EndDate: date("2026-12-31"), TotalSessions: 10, RemainingSessions: sessions(8)},
	)

	histories, err := service.ListByMember(context.Background(), member.ID)
	require.NoError(t, err)
	require.Len(t, histories, 2)

	assert.Equal(t, "new", histories[0].MembershipType)
	assert.Equal(t, StatusActive, histories[0].Status)
	assert.Equal(t, "old", histories[1].MembershipType)
	assert.Equal(t, StatusExpired, histories[1].Status)
}

func TestRefreshAll_RewritesOnlyStaleRows(t *testing.T) {
	service, db := setupService(t)

	expired := model.NewMember("만료회원", "010-1111-1111")
	expired.MembershipStatus = StatusActive // stale cache
	fresh := model.NewMember("신규회원", "010-2222-2222")
	testutil.MustCreate(t, db, expired, fresh)

	testutil.MustCreate(t, db, &model.MembershipHistory{
		MemberID:          expired.ID,
		MembershipType:    "1개월",
		StartDate:         *date("2026-09-01"),
		EndDate:           date("2026-09-30"),
		TotalSessions:     8,
		RemainingSessions: sessions(3),
	})

	updated, err := service.RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	assert.Equal(t, StatusExpired, reloadMember(t, db, expired.ID).MembershipStatus)
	assert.Equal(t, StatusUnregistered, reloadMember(t, db, fresh.ID).MembershipStatus)

	updated, err = service.RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}

func TestNewRefreshJob_RejectsBadSpec(t *testing.T) {
	service, _ := setupService(t)

	_, err := NewRefreshJob(service, "not a cron spec", testutil.Seoul())
	assert.Error(t, err)

	job, err := NewRefreshJob(service, "0 3 * * *", testutil.Seoul())
	require.NoError(t, err)
	job.Run()
}
