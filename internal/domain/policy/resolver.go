package policy

import (
	"fmt"
	"hash/fnv"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	"github.com/BruksfildServices01/attendance-tracker/internal/timezone"
)

// ===============================
// Resolver
// ===============================

// Resolve aplica herança campo a campo sobre a cadeia de Settings,
// ordenada do escopo mais específico ao mais genérico (evento, grupo,
// organização). Linhas ausentes entram como nil. Função pura:
// determinística para o mesmo snapshot das três linhas.
func Resolve(chain ...*models.Settings) Effective {
	eff := Defaults()

	if tz := firstString(chain, func(s *models.Settings) *string { return s.Timezone }); tz != nil {
		if timezone.IsValid(*tz) {
			eff.Timezone = *tz
		}
	}

	if v := firstBool(chain, func(s *models.Settings) *bool { return s.AllowLateCheckIn }); v != nil {
		eff.AllowLateCheckIn = *v
	}
	if v := firstInt(chain, func(s *models.Settings) *int { return s.LateThresholdMinutes }); v != nil {
		eff.LateThresholdMinutes = *v
	}
	if v := firstInt(chain, func(s *models.Settings) *int { return s.AutoMarkAbsentMinutes }); v != nil {
		eff.AutoMarkAbsentMinutes = *v
	}
	if v := firstBool(chain, func(s *models.Settings) *bool { return s.AllowSelfCheckIn }); v != nil {
		eff.AllowSelfCheckIn = *v
	}
	if v := firstBool(chain, func(s *models.Settings) *bool { return s.RequireCheckOut }); v != nil {
		eff.RequireCheckOut = *v
	}
	if v := firstBool(chain, func(s *models.Settings) *bool { return s.AllowExcuses }); v != nil {
		eff.AllowExcuses = *v
	}
	if v := firstBool(chain, func(s *models.Settings) *bool { return s.ExcuseRequiresApproval }); v != nil {
		eff.ExcuseRequiresApproval = *v
	}

	for _, s := range chain {
		if s != nil && s.Privacy != nil {
			eff.Privacy = *s.Privacy
			break
		}
	}
	for _, s := range chain {
		if s != nil && s.Notifications != nil {
			eff.Notifications = *s.Notifications
			break
		}
	}

	// Escopos superiores validam limites mais largos; no evento o valor
	// herdado é truncado ao limite do nível de evento.
	eff.LateThresholdMinutes = clamp(eff.LateThresholdMinutes, 0, MaxLateThresholdMinutes)
	eff.AutoMarkAbsentMinutes = clamp(eff.AutoMarkAbsentMinutes, 0, MaxAutoMarkAbsentMinutes)

	return eff
}

// Fingerprint gera a chave de cache a partir dos timestamps de update
// das três linhas de origem. Uma escrita em qualquer linha muda o
// fingerprint, tornando entradas antigas inalcançáveis.
func Fingerprint(chain ...*models.Settings) string {
	h := fnv.New64a()
	for _, s := range chain {
		if s == nil {
			fmt.Fprint(h, "-;")
			continue
		}
		fmt.Fprintf(h, "%d:%d;", s.ID, s.UpdatedAt.UnixNano())
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// ===============================
// Helpers
// ===============================

func firstString(chain []*models.Settings, get func(*models.Settings) *string) *string {
	for _, s := range chain {
		if s == nil {
			continue
		}
		if v := get(s); v != nil {
			return v
		}
	}
	return nil
}

func firstBool(chain []*models.Settings, get func(*models.Settings) *bool) *bool {
	for _, s := range chain {
		if s == nil {
			continue
		}
		if v := get(s); v != nil {
			return v
		}
	}
	return nil
}

func firstInt(chain []*models.Settings, get func(*models.Settings) *int) *int {
	for _, s := range chain {
		if s == nil {
			continue
		}
		if v := get(s); v != nil {
			return v
		}
	}
	return nil
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
