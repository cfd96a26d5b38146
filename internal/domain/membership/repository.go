package membership

import (
	"context"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

type Store interface {
	// Find retorna (nil, nil) quando não existe membership no escopo.
	Find(
		ctx context.Context,
		userID uint,
		entityType string,
		entityID uint,
	) (*models.Membership, error)

	GetMembership(
		ctx context.Context,
		id uint,
	) (*models.Membership, error)

	FindByInviteToken(
		ctx context.Context,
		token string,
	) (*models.Membership, error)

	CreateMembership(
		ctx context.Context,
		m *models.Membership,
	) error

	UpdateMembership(
		ctx context.Context,
		m *models.Membership,
	) error

	// ParentOf resolve um passo da hierarquia:
	// event → (group, org), group → org, organization → raiz.
	ParentOf(
		ctx context.Context,
		entityType string,
		entityID uint,
	) (parentType string, parentID uint, orgID uint, err error)
}
