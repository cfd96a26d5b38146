package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
	ucmembership "github.com/BruksfildServices01/attendance-tracker/internal/usecase/membership"
	ucpolicy "github.com/BruksfildServices01/attendance-tracker/internal/usecase/policy"
)

func TestSweepAbsencesIsIdempotent(t *testing.T) {
	s := newFixture()

	// prazo de 30 minutos configurado na organização
	deadline := 30
	s.settings[settingsKey(models.EntityOrganization, 1)] = &models.Settings{
		EntityType: models.EntityOrganization, EntityID: 1,
		AutoMarkAbsentMinutes: &deadline,
	}

	auth := ucmembership.NewAuthorizer(s)
	policies := ucpolicy.NewResolver(s, nil)
	uc := NewSweepAbsences(s, policies, auth)

	asOf := testStart.Add(time.Hour)

	marked, err := uc.Execute(context.Background(), 3, asOf, 99)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if marked != 1 {
		t.Fatalf("expected 1 record marked, got %d", marked)
	}
	if s.records[7].Status != "absent" {
		t.Fatalf("record status: got %q", s.records[7].Status)
	}

	// segunda varredura: mesmo estado final, nenhuma auditoria extra
	marked, err = uc.Execute(context.Background(), 3, asOf, 99)
	if err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}
	if marked != 0 {
		t.Fatalf("second sweep must be a no-op, marked %d", marked)
	}
	if len(s.audits) != 1 {
		t.Fatalf("expected exactly one audit entry, got %d", len(s.audits))
	}
}

func TestSweepBeforeDeadlineMarksNothing(t *testing.T) {
	s := newFixture()

	deadline := 30
	s.settings[settingsKey(models.EntityOrganization, 1)] = &models.Settings{
		EntityType: models.EntityOrganization, EntityID: 1,
		AutoMarkAbsentMinutes: &deadline,
	}

	auth := ucmembership.NewAuthorizer(s)
	policies := ucpolicy.NewResolver(s, nil)
	uc := NewSweepAbsences(s, policies, auth)

	marked, err := uc.Execute(context.Background(), 3, testStart.Add(10*time.Minute), 99)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if marked != 0 {
		t.Fatalf("nothing should be marked before the deadline, got %d", marked)
	}
}

func TestSweepDisabledPolicyIsNoop(t *testing.T) {
	s := newFixture()

	auth := ucmembership.NewAuthorizer(s)
	policies := ucpolicy.NewResolver(s, nil)
	uc := NewSweepAbsences(s, policies, auth)

	// default: AutoMarkAbsentMinutes = 0 → desabilitado
	marked, err := uc.Execute(context.Background(), 3, testStart.Add(48*time.Hour), 99)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if marked != 0 {
		t.Fatalf("disabled policy must mark nothing, got %d", marked)
	}
}
