package membership

import (
	"context"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// ======================================================
// USE CASE — SET MEMBERSHIP STATUS
// ======================================================

type SetStatus struct {
	store domain.Store
	auth  *Authorizer
	audit *audit.Dispatcher
}

func NewSetStatus(
	store domain.Store,
	auth *Authorizer,
	auditor *audit.Dispatcher,
) *SetStatus {
	return &SetStatus{
		store: store,
		auth:  auth,
		audit: auditor,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	membershipID uint,
	newStatus string,
	actor uint,
) (*models.Membership, error) {

	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	m, err := uc.store.GetMembership(ctx, membershipID)
	if err != nil {
		return nil, httperr.ErrBusiness("membership_not_found")
	}

	if err := uc.auth.Execute(ctx, actor, m.EntityType, m.EntityID, domain.PermManageMembers); err != nil {
		return nil, err
	}

	old := m.Status
	if old == newStatus {
		return m, nil
	}

	m.Status = newStatus
	if err := uc.store.UpdateMembership(ctx, m); err != nil {
		return nil, err
	}

	scope, err := ScopeOf(ctx, uc.store, m.EntityType, m.EntityID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Entry(
		scope,
		models.EntityMembership,
		m.ID,
		audit.ActionMemberStatusSet,
		actor,
		[]models.FieldChange{{Field: "status", OldValue: old, NewValue: newStatus}},
		"",
	))

	return m, nil
}
