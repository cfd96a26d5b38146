package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// --------------------------------------------------
// Stub do store de settings
// --------------------------------------------------

type stubSettingsStore struct {
	rows map[string]*models.Settings
}

func newStubSettingsStore() *stubSettingsStore {
	return &stubSettingsStore{rows: map[string]*models.Settings{}}
}

func settingsKey(entityType string, entityID uint) string {
	return fmt.Sprintf("%s/%d", entityType, entityID)
}

func (s *stubSettingsStore) GetEvent(_ context.Context, _ uint) (*models.Event, error) {
	return nil, nil
}

func (s *stubSettingsStore) GetSettings(_ context.Context, entityType string, entityID uint) (*models.Settings, error) {
	set, ok := s.rows[settingsKey(entityType, entityID)]
	if !ok {
		return nil, nil
	}
	cp := *set
	return &cp, nil
}

func (s *stubSettingsStore) PutSettings(_ context.Context, set *models.Settings) error {
	if set.ID == 0 {
		set.ID = uint(len(s.rows) + 1)
	}
	cp := *set
	s.rows[settingsKey(set.EntityType, set.EntityID)] = &cp
	return nil
}

// --------------------------------------------------
// Limites de escrita
// --------------------------------------------------

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestValidateSettingsWriteBounds(t *testing.T) {
	cases := []struct {
		name       string
		entityType string
		req        PutSettingsRequest
		wantOK     bool
		wantCode   string
	}{
		{
			name:       "org aceita limite de 7 dias",
			entityType: models.EntityOrganization,
			req:        PutSettingsRequest{LateThresholdMinutes: intPtr(7 * 24 * 60)},
			wantOK:     true,
		},
		{
			name:       "org rejeita acima de 7 dias",
			entityType: models.EntityOrganization,
			req:        PutSettingsRequest{LateThresholdMinutes: intPtr(7*24*60 + 1)},
			wantOK:     false,
			wantCode:   "invalid_threshold",
		},
		{
			name:       "evento aceita limite de 24h",
			entityType: models.EntityEvent,
			req:        PutSettingsRequest{LateThresholdMinutes: intPtr(24 * 60)},
			wantOK:     true,
		},
		{
			name:       "evento rejeita acima de 24h",
			entityType: models.EntityEvent,
			req:        PutSettingsRequest{LateThresholdMinutes: intPtr(24*60 + 1)},
			wantOK:     false,
			wantCode:   "invalid_threshold",
		},
		{
			name:       "atraso negativo rejeitado",
			entityType: models.EntityGroup,
			req:        PutSettingsRequest{LateThresholdMinutes: intPtr(-1)},
			wantOK:     false,
			wantCode:   "invalid_threshold",
		},
		{
			name:       "auto-absent acima de 7 dias rejeitado",
			entityType: models.EntityGroup,
			req:        PutSettingsRequest{AutoMarkAbsentMinutes: intPtr(7*24*60 + 1)},
			wantOK:     false,
			wantCode:   "invalid_threshold",
		},
		{
			name:       "timezone fora do formato rejeitado",
			entityType: models.EntityOrganization,
			req:        PutSettingsRequest{Timezone: strPtr("America/Sao_Paulo")},
			wantOK:     false,
			wantCode:   "invalid_timezone",
		},
		{
			name:       "timezone GMT aceito",
			entityType: models.EntityOrganization,
			req:        PutSettingsRequest{Timezone: strPtr("GMT-03:00")},
			wantOK:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, ok := validateSettingsWrite(tc.entityType, &tc.req)
			if ok != tc.wantOK {
				t.Fatalf("ok=%v, want %v (code=%q)", ok, tc.wantOK, code)
			}
			if !ok && code != tc.wantCode {
				t.Errorf("code=%q, want %q", code, tc.wantCode)
			}
		})
	}
}

// --------------------------------------------------
// PUT substitui a linha inteira
// --------------------------------------------------

func TestUpsertReplacesOmittedFields(t *testing.T) {
	store := newStubSettingsStore()
	store.rows[settingsKey(models.EntityGroup, 2)] = &models.Settings{
		ID:                   1,
		EntityType:           models.EntityGroup,
		EntityID:             2,
		Timezone:             strPtr("GMT-03:00"),
		AllowLateCheckIn:     boolPtr(true),
		LateThresholdMinutes: intPtr(30),
	}

	h := &SettingsHandler{store: store}

	set, err := h.upsert(context.Background(), models.EntityGroup, 2, &PutSettingsRequest{
		AllowExcuses: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if set.AllowExcuses == nil || *set.AllowExcuses {
		t.Error("campo enviado não foi gravado")
	}

	// Campos omitidos voltam a herdar do escopo pai.
	if set.Timezone != nil || set.AllowLateCheckIn != nil || set.LateThresholdMinutes != nil {
		t.Errorf("campos omitidos deveriam ficar nil: %+v", set)
	}

	saved := store.rows[settingsKey(models.EntityGroup, 2)]
	if saved.Timezone != nil || saved.LateThresholdMinutes != nil {
		t.Errorf("linha persistida manteve valores antigos: %+v", saved)
	}
}
