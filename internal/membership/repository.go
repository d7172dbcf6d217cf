package membership

import (
	"context"
	"errors"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/model"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

func NewMembershipRepository() *MembershipRepository {
	return &MembershipRepository{}
}

func (r *MembershipRepository) Create(ctx context.Context, db *gorm.DB, history *model.MembershipHistory) error {
	return db.WithContext(ctx).Create(history).Error
}

func (r *MembershipRepository) Save(ctx context.Context, db *gorm.DB, history *model.MembershipHistory) error {
	return db.WithContext(ctx).Save(history).Error
}

func (r *MembershipRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.MembershipHistory, error) {
	var history model.MembershipHistory
	err := db.WithContext(ctx).Where("id = ?", id).First(&history).Error
	if err != nil {
		return nil, err
	}
	return &history, nil
}

// ListByMember returns a member's passes, newest first
func (r *MembershipRepository) ListByMember(ctx context.Context, db *gorm.DB, memberID uint32) ([]model.MembershipHistory, error) {
	var histories []model.MembershipHistory
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("start_date DESC").
		Order("id DESC").
		Find(&histories).Error
	return histories, err
}

// FindLatestByMember returns the newest pass, or nil when the member never bought one
func (r *MembershipRepository) FindLatestByMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.MembershipHistory, error) {
	var history model.MembershipHistory
	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("start_date DESC").
		Order("id DESC").
		First(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

// LatestByMembers loads the newest pass per member in one query and reduces in memory.
// An empty memberIDs slice means every member.
func (r *MembershipRepository) LatestByMembers(ctx context.Context, db *gorm.DB, memberIDs []uint32) (map[uint32]*model.MembershipHistory, error) {
	var histories []model.MembershipHistory

	q := db.WithContext(ctx).Order("member_id").Order("start_date DESC").Order("id DESC")
	if len(memberIDs) > 0 {
		q = q.Where("member_id IN ?", memberIDs)
	}
	if err := q.Find(&histories).Error; err != nil {
		return nil, err
	}

	latest := make(map[uint32]*model.MembershipHistory, len(histories))
	for i := range histories {
		h := &histories[i]
		if _, seen := latest[h.MemberID]; !seen {
			latest[h.MemberID] = h
		}
	}
	return latest, nil
}

func (r *MembershipRepository) FindMember(ctx context.Context, db *gorm.DB, memberID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", memberID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MembershipRepository) ListMembers(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	var members []model.Member
	err := db.WithContext(ctx).Order("id").Find(&members).Error
	return members, err
}

// UpdateMemberCache writes the snapshot into the member row's denormalized columns
func (r *MembershipRepository) UpdateMemberCache(ctx context.Context, db *gorm.DB, memberID uint32, snap Snapshot) error {
	values := map[string]interface{}{
		"membership_status":  snap.Status,
		"remaining_sessions": nil,
		"expires_at":         nil,
	}
	if snap.RemainingSessions != nil {
		values["remaining_sessions"] = *snap.RemainingSessions
	}
	if snap.ExpiresAt != nil {
		values["expires_at"] = *snap.ExpiresAt
	}

	return db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", memberID).
		Updates(values).Error
}
