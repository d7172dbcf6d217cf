package dashboard

import (
	"context"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// attendanceCount is one (class, status) bucket of reservations
type attendanceCount struct {
	ClassID          uint32
	AttendanceStatus string
	Count            int
}

type DashboardRepository struct{}

func NewDashboardRepository() *DashboardRepository {
	return &DashboardRepository{}
}

// ClassesBetween returns classes with from <= class_date < to
func (r *DashboardRepository) ClassesBetween(ctx context.Context, db *gorm.DB, from, to datatypes.Date) ([]model.Class, error) {
	var classes []model.Class
	err := db.WithContext(ctx).
		Where("class_date >= ? AND class_date < ?", from, to).
		Order("class_date").
		Order("start_time").
		Find(&classes).Error
	return classes, err
}

func (r *DashboardRepository) AttendanceCounts(ctx context.Context, db *gorm.DB, classIDs []uint32) ([]attendanceCount, error) {
	var rows []attendanceCount
	if len(classIDs) == 0 {
		return rows, nil
	}

	err := db.WithContext(ctx).
		Model(&model.Reservation{}).
		Select("class_id, attendance_status, COUNT(*) AS count").
		Where("class_id IN ?", classIDs).
		Group("class_id, attendance_status").
		Scan(&rows).Error
	return rows, err
}

func (r *DashboardRepository) Instructors(ctx context.Context, db *gorm.DB) ([]model.Instructor, error) {
	var instructors []model.Instructor
	err := db.WithContext(ctx).Order("name").Order("id").Find(&instructors).Error
	return instructors, err
}

// MembershipSales sums passes whose start date falls in [from, to)
func (r *DashboardRepository) MembershipSales(ctx context.Context, db *gorm.DB, from, to datatypes.Date) (MembershipSales, error) {
	var row struct {
		Count   int
		Revenue int
	}
	err := db.WithContext(ctx).
		Model(&model.MembershipHistory{}).
		Select("COUNT(*) AS count, COALESCE(SUM(price), 0) AS revenue").
		Where("start_date >= ? AND start_date < ?", from, to).
		Scan(&row).Error
	return MembershipSales{Count: row.Count, Revenue: row.Revenue}, err
}

func (r *DashboardRepository) Members(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).Order("id").Find(&members).Error
	return members, err
}
