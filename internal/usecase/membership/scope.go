package membership

import (
	"context"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// ScopeOf resolve o escopo de auditoria (org/grupo/evento) de um alvo
// da hierarquia, subindo pelos pais quando necessário.
func ScopeOf(
	ctx context.Context,
	store domain.Store,
	entityType string,
	entityID uint,
) (audit.Scope, error) {

	switch entityType {
	case models.EntityOrganization:
		return audit.Scope{OrganizationID: entityID}, nil

	case models.EntityGroup:
		_, _, orgID, err := store.ParentOf(ctx, entityType, entityID)
		if err != nil {
			return audit.Scope{}, err
		}
		return audit.Scope{OrganizationID: orgID, GroupID: entityID}, nil

	case models.EntityEvent:
		_, groupID, orgID, err := store.ParentOf(ctx, entityType, entityID)
		if err != nil {
			return audit.Scope{}, err
		}
		return audit.Scope{OrganizationID: orgID, GroupID: groupID, EventID: entityID}, nil

	default:
		return audit.Scope{}, nil
	}
}
