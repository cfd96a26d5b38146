package membership

import (
	"testing"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

func active(role string) *models.Membership {
	return &models.Membership{Role: role, Status: StatusActive}
}

func TestAuthorizeExactActiveMemberView(t *testing.T) {
	d := Authorize(Input{Exact: active(RoleMember)}, PermView)
	if !d.Allowed {
		t.Fatalf("member should view, denied with %q", d.Reason)
	}
}

func TestAuthorizeExactMemberCannotManageEvents(t *testing.T) {
	d := Authorize(Input{Exact: active(RoleMember)}, PermManageEvents)
	if d.Allowed {
		t.Fatal("member should not manage events")
	}
	if d.Reason != DenyInsufficientPermission {
		t.Fatalf("expected insufficient_permission, got %q", d.Reason)
	}
}

func TestAuthorizeExplicitPermissionsOverrideRole(t *testing.T) {
	m := active(RoleMember)
	m.Permissions = []string{PermView, PermManageEvents}

	d := Authorize(Input{Exact: m}, PermManageEvents)
	if !d.Allowed {
		t.Fatalf("explicit permission set should override role defaults, denied with %q", d.Reason)
	}
}

func TestAuthorizeExplicitPermissionsCanRestrict(t *testing.T) {
	// lista explícita substitui os defaults do role no escopo exato
	m := active(RoleModerator)
	m.Permissions = []string{PermView}

	d := Authorize(Input{Exact: m}, PermManageEvents)
	if d.Allowed {
		t.Fatal("explicit permission list should mask the moderator defaults")
	}
}

func TestAuthorizeOrgAdminReachesEventWithoutGroupRow(t *testing.T) {
	// admin da organização sem membership no grupo nem no evento
	d := Authorize(Input{Org: active(RoleAdmin)}, PermManageEvents)
	if !d.Allowed {
		t.Fatalf("org admin should govern descendant events, denied with %q", d.Reason)
	}
}

func TestAuthorizeGroupModeratorCoversGroupEvents(t *testing.T) {
	d := Authorize(Input{Parent: active(RoleModerator)}, PermManageEvents)
	if !d.Allowed {
		t.Fatalf("group moderator should cover the group's events, denied with %q", d.Reason)
	}
}

func TestAuthorizeOrgModeratorDoesNotReachEvents(t *testing.T) {
	// moderator alcança um nível apenas: org-moderator não governa eventos
	d := Authorize(Input{Org: active(RoleModerator)}, PermManageEvents)
	if d.Allowed {
		t.Fatal("org moderator must not reach two levels down")
	}
	if d.Reason != DenyInsufficientRole {
		t.Fatalf("expected insufficient_role, got %q", d.Reason)
	}
}

func TestAuthorizeSuspendedExactDenied(t *testing.T) {
	m := active(RoleAdmin)
	m.Status = StatusSuspended

	d := Authorize(Input{Exact: m}, PermView)
	if d.Allowed {
		t.Fatal("suspended membership must not authorize")
	}
	if d.Reason != DenyMembershipSuspended {
		t.Fatalf("expected membership_suspended, got %q", d.Reason)
	}
}

func TestAuthorizeSuspendedExactStillWalksUpToOrgAdmin(t *testing.T) {
	m := active(RoleMember)
	m.Status = StatusSuspended

	d := Authorize(Input{Exact: m, Org: active(RoleAdmin)}, PermManageEvents)
	if !d.Allowed {
		t.Fatalf("org admin reach is independent of the suspended exact row, denied with %q", d.Reason)
	}
}

func TestAuthorizeNoMembershipAnywhere(t *testing.T) {
	d := Authorize(Input{}, PermView)
	if d.Allowed {
		t.Fatal("no membership must deny")
	}
	if d.Reason != DenyNoMembership {
		t.Fatalf("expected no_membership, got %q", d.Reason)
	}
}

func TestAuthorizeParentMemberGivesInsufficientRole(t *testing.T) {
	d := Authorize(Input{Parent: active(RoleMember)}, PermManageEvents)
	if d.Allowed {
		t.Fatal("plain member at the parent scope has no implicit reach")
	}
	if d.Reason != DenyInsufficientRole {
		t.Fatalf("expected insufficient_role, got %q", d.Reason)
	}
}
