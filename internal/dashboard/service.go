package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/class"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/membership"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/dateutil"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

const unassignedInstructorName = "미배정"

type DashboardService struct {
	db                   *gorm.DB
	dashboardRepository  *DashboardRepository
	membershipRepository *membership.MembershipRepository
	classService         *class.ClassService
	clock                dateutil.Clock
	loc                  *time.Location
}

func NewDashboardService(
	db *gorm.DB,
	dashboardRepository *DashboardRepository,
	membershipRepository *membership.MembershipRepository,
	classService *class.ClassService,
	clock dateutil.Clock,
	loc *time.Location,
) *DashboardService {
	return &DashboardService{
		db:                   db,
		dashboardRepository:  dashboardRepository,
		membershipRepository: membershipRepository,
		classService:         classService,
		clock:                clock,
		loc:                  loc,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*SummaryResponse, error) {
	today := dateutil.Today(s.clock, s.loc)

	classes, err := s.classService.ListBetween(ctx, today, today)
	if err != nil {
		return nil, err
	}

	members, err := s.dashboardRepository.Members(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("회원 목록 조회 실패: %w", err)
	}
	latest, err := s.membershipRepository.LatestByMembers(ctx, s.db, nil)
	if err != nil {
		return nil, fmt.Errorf("회원권 조회 실패: %w", err)
	}

	counts := MemberCounts{Total: len(members)}
	expiring := make([]ExpiringMember, 0)
	limit := dateutil.AddDays(today, expiringWithinDays)

	for i := range members {
		m := &members[i]
		if m.IsTemporary {
			counts.Temporary++
		}

		snap := membership.Summarize(latest[m.ID], today)
		switch snap.Status {
		case membership.StatusActive:
			counts.Active++
			if snap.ExpiresAt != nil && !dateutil.Before(limit, *snap.ExpiresAt) {
				expiring = append(expiring, ExpiringMember{
					MemberID:          m.ID,
					Name:              m.Name,
					Phone:             m.Phone,
					ExpiresAt:         dateutil.Format(*snap.ExpiresAt),
					RemainingSessions: snap.RemainingSessions,
				})
			}
		case membership.StatusExpired:
			counts.Expired++
		case membership.StatusUnset:
			counts.Unset++
		default:
			counts.Unregistered++
		}
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].ExpiresAt < expiring[j].ExpiresAt
	})

	return &SummaryResponse{
		Date:         dateutil.Format(today),
		TodayClasses: classes,
		Members:      counts,
		ExpiringSoon: expiring,
	}, nil
}

// Settlement aggregates one calendar month per instructor. An empty month means the current one.
func (s *DashboardService) Settlement(ctx context.Context, month string) (*SettlementResponse, error) {
	if month == "" {
		month = s.clock().In(s.loc).Format(dateutil.MonthLayout)
	}
	from, to, err := dateutil.MonthRange(month)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidMonth)
	}

	log := logger.FromContext(ctx)

	classes, err := s.dashboardRepository.ClassesBetween(ctx, s.db, from, to)
	if err != nil {
		return nil, fmt.Errorf("수업 조회 실패: %w", err)
	}
	instructors, err := s.dashboardRepository.Instructors(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("강사 조회 실패: %w", err)
	}

	ids := make([]uint32, 0, len(classes))
	for i := range classes {
		ids = append(ids, classes[i].ID)
	}
	buckets, err := s.dashboardRepository.AttendanceCounts(ctx, s.db, ids)
	if err != nil {
		return nil, fmt.Errorf("출석 집계 실패: %w", err)
	}

	sales, err := s.dashboardRepository.MembershipSales(ctx, s.db, from, to)
	if err != nil {
		return nil, fmt.Errorf("회원권 매출 집계 실패: %w", err)
	}

	report := buildSettlement(month, classes, instructors, buckets)
	report.MembershipSales = sales

	log.Info("정산 집계 완료",
		"month", month,
		"classes", report.TotalClasses,
		"total_pay", report.TotalPay,
	)

	return report, nil
}

// Export renders the settlement of month as an xlsx workbook
func (s *DashboardService) Export(ctx context.Context, month string) (*SettlementResponse, []byte, error) {
	report, err := s.Settlement(ctx, month)
	if err != nil {
		return nil, nil, err
	}

	content, err := GenerateSettlementExcel(report)
	if err != nil {
		logger.FromContext(ctx).Error("정산 엑셀 생성 실패", "month", report.Month, "error", err)
		return nil, nil, fmt.Errorf("%v: %w", err, ErrExportFailed)
	}
	return report, content, nil
}

// buildSettlement groups classes by instructor. Active instructors without classes are listed
// with zeros; classes with no instructor go to a trailing 미배정 row.
func buildSettlement(month string, classes []model.Class, instructors []model.Instructor, buckets []attendanceCount) *SettlementResponse {
	type stats struct {
		reservations, attended, absent int
	}
	perClass := make(map[uint32]*stats, len(classes))
	for _, b := range buckets {
		st, ok := perClass[b.ClassID]
		if !ok {
			st = &stats{}
			perClass[b.ClassID] = st
		}
		st.reservations += b.Count
		switch b.AttendanceStatus {
		case model.AttendanceAttended:
			st.attended += b.Count
		case model.AttendanceAbsent:
			st.absent += b.Count
		}
	}

	rows := make(map[uint32]*InstructorSettlement, len(instructors))
	order := make([]uint32, 0, len(instructors))
	for i := range instructors {
		ins := &instructors[i]
		id := ins.ID
		rows[id] = &InstructorSettlement{
			InstructorID:   &id,
			InstructorName: ins.Name,
			PayPerClass:    ins.PayPerClass,
		}
		order = append(order, id)
	}
	unassigned := &InstructorSettlement{InstructorName: unassignedInstructorName}

	for i := range classes {
		c := &classes[i]
		row := unassigned
		if c.InstructorID != nil {
			if r, ok := rows[*c.InstructorID]; ok {
				row = r
			}
		}
		row.Classes++
		if st, ok := perClass[c.ID]; ok {
			row.Reservations += st.reservations
			row.Attended += st.attended
			row.Absent += st.absent
		}
	}

	active := make(map[uint32]bool, len(instructors))
	for i := range instructors {
		active[instructors[i].ID] = instructors[i].IsActive
	}

	report := &SettlementResponse{
		Month:       month,
		Instructors: make([]InstructorSettlement, 0, len(order)+1),
	}
	for _, id := range order {
		row := rows[id]
		if row.Classes == 0 && !active[id] {
			continue
		}
		row.Pay = row.Classes * row.PayPerClass
		report.Instructors = append(report.Instructors, *row)
	}
	if unassigned.Classes > 0 {
		report.Instructors = append(report.Instructors, *unassigned)
	}

	for _, row := range report.Instructors {
		report.TotalClasses += row.Classes
		report.TotalPay += row.Pay
	}
	return report
}
