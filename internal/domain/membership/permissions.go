package membership

// ===============================
// Roles / Permissions
// ===============================

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusPending   = "pending"
	StatusSuspended = "suspended"
)

const (
	PermView           = "view"
	PermEdit           = "edit"
	PermDelete         = "delete"
	PermInvite         = "invite"
	PermManageMembers  = "manage_members"
	PermManageEvents   = "manage_events"
	PermManageSettings = "manage_settings"
	PermViewReports    = "view_reports"
	PermExportData     = "export_data"
)

var allPermissions = []string{
	PermView,
	PermEdit,
	PermDelete,
	PermInvite,
	PermManageMembers,
	PermManageEvents,
	PermManageSettings,
	PermViewReports,
	PermExportData,
}

// RolePermissions retorna o conjunto implícito de permissões de um role.
func RolePermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return allPermissions
	case RoleModerator:
		return []string{
			PermView,
			PermEdit,
			PermInvite,
			PermManageMembers,
			PermManageEvents,
			PermViewReports,
		}
	case RoleMember:
		return []string{PermView}
	default:
		return nil
	}
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleModerator, RoleMember:
		return true
	}
	return false
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusInactive, StatusPending, StatusSuspended:
		return true
	}
	return false
}

func IsValidPermission(perm string) bool {
	for _, p := range allPermissions {
		if p == perm {
			return true
		}
	}
	return false
}

func hasPermission(perms []string, required string) bool {
	for _, p := range perms {
		if p == required {
			return true
		}
	}
	return false
}
