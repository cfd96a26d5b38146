package audit

import (
	"testing"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

func TestSeverityDerivation(t *testing.T) {
	cases := map[string]string{
		ActionOverride:       SeverityHigh,
		ActionExcuseRejected: SeverityHigh,
		ActionLock:           SeverityMedium,
		ActionUnlock:         SeverityMedium,
		ActionCheckIn:        SeverityLow,
		ActionCheckOut:       SeverityLow,
		ActionAutoAbsent:     SeverityLow,
		ActionExcuseFiled:    SeverityLow,
	}

	for action, want := range cases {
		if got := SeverityFor(action); got != want {
			t.Errorf("%s: got %q, want %q", action, got, want)
		}
	}
}

func TestEntryAttribution(t *testing.T) {
	scope := Scope{OrganizationID: 1, GroupID: 2, EventID: 3}
	e := Entry(scope, "record", 7, ActionOverride, 42, nil, "manual fix")

	if e.EntityType != "record" || e.EntityID != 7 {
		t.Errorf("entity: %+v", e)
	}
	if e.UserID == nil || *e.UserID != 42 {
		t.Error("actor not attributed")
	}
	if e.Severity != SeverityHigh {
		t.Errorf("severity: got %q", e.Severity)
	}
	if e.OrganizationID != 1 || e.GroupID != 2 || e.EventID != 3 {
		t.Errorf("scope not stamped: %+v", e)
	}
}

func TestRecordScope(t *testing.T) {
	rec := &models.Record{OrganizationID: 1, GroupID: 2, EventID: 3}

	got := RecordScope(rec)
	want := Scope{OrganizationID: 1, GroupID: 2, EventID: 3}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
