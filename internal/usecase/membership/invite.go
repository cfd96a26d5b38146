package membership

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// ======================================================
// USE CASE — INVITE MEMBER
// ======================================================

const inviteValidity = 7 * 24 * time.Hour

type InviteMemberInput struct {
	EntityType string
	EntityID   uint
	UserID     uint
	Role       string
	Actor      uint
}

type InviteMember struct {
	store domain.Store
	auth  *Authorizer
	audit *audit.Dispatcher
}

func NewInviteMember(
	store domain.Store,
	auth *Authorizer,
	auditor *audit.Dispatcher,
) *InviteMember {
	return &InviteMember{
		store: store,
		auth:  auth,
		audit: auditor,
	}
}

func (uc *InviteMember) Execute(
	ctx context.Context,
	in InviteMemberInput,
) (*models.Membership, error) {

	if !domain.IsValidRole(in.Role) {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	if err := uc.auth.Execute(ctx, in.Actor, in.EntityType, in.EntityID, domain.PermManageMembers); err != nil {
		return nil, err
	}

	existing, err := uc.store.Find(ctx, in.UserID, in.EntityType, in.EntityID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("membership_already_exists")
	}

	expiry := time.Now().Add(inviteValidity)
	addedBy := in.Actor

	m := &models.Membership{
		UserID:       in.UserID,
		EntityType:   in.EntityType,
		EntityID:     in.EntityID,
		Role:         in.Role,
		Status:       domain.StatusPending,
		AddedBy:      &addedBy,
		InviteToken:  uuid.NewString(),
		InviteExpiry: &expiry,
	}

	if err := uc.store.CreateMembership(ctx, m); err != nil {
		return nil, err
	}

	scope, err := ScopeOf(ctx, uc.store, in.EntityType, in.EntityID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Entry(
		scope,
		models.EntityMembership,
		m.ID,
		audit.ActionMemberInvited,
		in.Actor,
		nil,
		"",
	))

	return m, nil
}
