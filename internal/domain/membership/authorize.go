package membership

import "github.com/BruksfildServices01/attendance-tracker/internal/models"

// ===============================
// Authorization
// ===============================

const (
	DenyNoMembership           = "no_membership"
	DenyMembershipSuspended    = "membership_suspended"
	DenyInsufficientRole       = "insufficient_role"
	DenyInsufficientPermission = "insufficient_permission"
)

type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Input carrega o snapshot das memberships relevantes para uma decisão:
// a do escopo exato e as dos escopos ancestrais (ordenadas do pai mais
// próximo para a organização). Entradas ausentes entram como nil.
type Input struct {
	Exact  *models.Membership
	Parent *models.Membership // grupo dono, quando o alvo é um evento
	Org    *models.Membership // organização dona, quando o alvo não é ela
}

// Authorize decide se o usuário tem a permissão pedida no escopo alvo.
// Regras:
//   - membership ativa no escopo exato vale primeiro; lista explícita de
//     permissões, quando presente, substitui os defaults do role;
//   - admin ativo na organização governa implicitamente todos os grupos
//     e eventos abaixo dela;
//   - moderator alcança implicitamente um nível apenas (grupo → eventos
//     do grupo);
//   - função pura, sem efeitos colaterais.
func Authorize(in Input, required string) Decision {
	if in.Exact != nil && in.Exact.Status == StatusActive {
		perms := []string(in.Exact.Permissions)
		if len(perms) == 0 {
			perms = RolePermissions(in.Exact.Role)
		}
		if hasPermission(perms, required) {
			return Allow()
		}
	}

	// Caminhada para cima na hierarquia: admin em qualquer ancestral
	// governa tudo abaixo; moderator só alcança o nível imediatamente
	// inferior.
	if in.Parent != nil && in.Parent.Status == StatusActive {
		switch in.Parent.Role {
		case RoleAdmin:
			return Allow()
		case RoleModerator:
			if hasPermission(RolePermissions(RoleModerator), required) {
				return Allow()
			}
		}
	}

	if in.Org != nil && in.Org.Status == StatusActive && in.Org.Role == RoleAdmin {
		return Allow()
	}

	return Deny(denyReason(in))
}

func denyReason(in Input) string {
	if in.Exact != nil {
		if in.Exact.Status == StatusSuspended {
			return DenyMembershipSuspended
		}
		if in.Exact.Status == StatusActive {
			return DenyInsufficientPermission
		}
	}
	if activeAnywhere(in) {
		return DenyInsufficientRole
	}
	return DenyNoMembership
}

func activeAnywhere(in Input) bool {
	for _, m := range []*models.Membership{in.Exact, in.Parent, in.Org} {
		if m != nil && m.Status == StatusActive {
			return true
		}
	}
	return false
}
