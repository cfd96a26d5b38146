package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

type MembershipGormRepository struct {
	db *gorm.DB
}

func NewMembershipGormRepository(db *gorm.DB) *MembershipGormRepository {
	return &MembershipGormRepository{db: db}
}

// Find devolve (nil, nil) quando não há membership no escopo — ausência
// é resposta válida para a autorização, não erro.
func (r *MembershipGormRepository) Find(
	ctx context.Context,
	userID uint,
	entityType string,
	entityID uint,
) (*models.Membership, error) {

	var m models.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND entity_type = ? AND entity_id = ?", userID, entityType, entityID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MembershipGormRepository) GetMembership(
	ctx context.Context,
	id uint,
) (*models.Membership, error) {

	var m models.Membership
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MembershipGormRepository) FindByInviteToken(
	ctx context.Context,
	token string,
) (*models.Membership, error) {

	var m models.Membership
	err := r.db.WithContext(ctx).
		Where("invite_token = ?", token).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MembershipGormRepository) CreateMembership(
	ctx context.Context,
	m *models.Membership,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MembershipGormRepository) UpdateMembership(
	ctx context.Context,
	m *models.Membership,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// ParentOf sobe um nível da hierarquia: event → (group, org),
// group → org, organization → raiz (sem pai).
func (r *MembershipGormRepository) ParentOf(
	ctx context.Context,
	entityType string,
	entityID uint,
) (string, uint, uint, error) {

	switch entityType {
	case models.EntityEvent:
		var ev models.Event
		if err := r.db.WithContext(ctx).
			Select("id", "group_id", "organization_id").
			First(&ev, entityID).Error; err != nil {
			return "", 0, 0, err
		}
		return models.EntityGroup, ev.GroupID, ev.OrganizationID, nil

	case models.EntityGroup:
		var g models.Group
		if err := r.db.WithContext(ctx).
			Select("id", "organization_id").
			First(&g, entityID).Error; err != nil {
			return "", 0, 0, err
		}
		return models.EntityOrganization, g.OrganizationID, g.OrganizationID, nil

	default:
		return "", 0, entityID, nil
	}
}
