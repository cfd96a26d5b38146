package membership

import (
	"context"
	"time"

	"github.com/BruksfildServices01/attendance-tracker/internal/audit"
	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/membership"
	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// ======================================================
// USE CASE — ACCEPT INVITE
// ======================================================

type AcceptInvite struct {
	store domain.Store
	audit *audit.Dispatcher
}

func NewAcceptInvite(
	store domain.Store,
	auditor *audit.Dispatcher,
) *AcceptInvite {
	return &AcceptInvite{
		store: store,
		audit: auditor,
	}
}

func (uc *AcceptInvite) Execute(
	ctx context.Context,
	token string,
	userID uint,
) (*models.Membership, error) {

	m, err := uc.store.FindByInviteToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if m == nil || m.UserID != userID {
		return nil, httperr.ErrBusiness("invite_not_found")
	}

	if m.Status != domain.StatusPending {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	now := time.Now()
	if m.InviteExpiry != nil && now.After(*m.InviteExpiry) {
		return nil, httperr.ErrBusiness("invite_expired")
	}

	m.Status = domain.StatusActive
	m.JoinedAt = now
	m.LastActivity = &now
	m.InviteToken = ""
	m.InviteExpiry = nil

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
		audit.ActionMemberAccepted,
		userID,
		nil,
		"",
	))

	return m, nil
}
