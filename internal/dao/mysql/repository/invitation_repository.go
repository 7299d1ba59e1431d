package repository

import (
	"bookswap_server/internal/model"

	"gorm.io/gorm"
)

type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository 创建邀请 Repository
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

// FindByCode 按邀请码查找
func (r *invitationRepository) FindByCode(code string) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.First(&invitation, "code = ?", code).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询邀请 code=%s", code)
	}
	return &invitation, nil
}

// FindByInviterAndEmail 按邀请人和目标邮箱查找
func (r *invitationRepository) FindByInviterAndEmail(inviterId, email string) (*model.Invitation, error) {
	var invitation model.Invitation
	err := r.db.Where("inviter_id = ? AND email = ?", inviterId, email).First(&invitation).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询邀请 inviter=%s email=%s", inviterId, email)
	}
	return &invitation, nil
}

// FindByInviter 查找用户发出的所有邀请
func (r *invitationRepository) FindByInviter(inviterId string) ([]model.Invitation, error) {
	var invitations []model.Invitation
	err := r.db.Where("inviter_id = ?", inviterId).Order("created_at DESC").Find(&invitations).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询邀请列表 inviter=%s", inviterId)
	}
	return invitations, nil
}

// Create 创建邀请
func (r *invitationRepository) Create(invitation *model.Invitation) error {
	if err := r.db.Create(invitation).Error; err != nil {
		return wrapDBError(err, "创建邀请")
	}
	return nil
}

// Update 更新邀请
func (r *invitationRepository) Update(invitation *model.Invitation) error {
	if err := r.db.Save(invitation).Error; err != nil {
		return wrapDBError(err, "更新邀请")
	}
	return nil
}

// SoftDeleteByUsers 批量软删除指定用户发出的邀请
func (r *invitationRepository) SoftDeleteByUsers(uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	if err := r.db.Where("inviter_id IN ?", uuids).Delete(&model.Invitation{}).Error; err != nil {
		return wrapDBError(err, "批量删除邀请")
	}
	return nil
}
