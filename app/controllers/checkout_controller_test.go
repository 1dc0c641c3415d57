package controllers

import (
	"testing"
	"time"

	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/checkout"
	"github.com/AFabelfilipe1/Novo-Site-MasterPllays/internal/pkg/plans"
)

func TestResumesCheckout(t *testing.T) {
	t.Parallel()

	m := checkout.NewManager(checkout.DefaultSettleDelay, nil)
	basic, ok := plans.ByName("Básico")
	if !ok {
		t.Fatal("fixture plan missing")
	}
	s := m.Create(1, basic)

	if !resumesCheckout(s, "") {
		t.Fatal("entry without plan parameters must resume the active session")
	}
	if !resumesCheckout(s, "Básico") {
		t.Fatal("entry with the same plan must resume the active session")
	}
	if resumesCheckout(s, "Master") {
		t.Fatal("entry with a different plan must not resume the active session")
	}
}

// Returning to the plan list mid-flow and picking another plan discards the
// old session and opens a fresh one on the new plan.
func TestCheckoutRestartOnPlanChange(t *testing.T) {
	t.Parallel()

	m := checkout.NewManager(50*time.Millisecond, nil)
	basic, _ := plans.ByName("Básico")
	old := m.Create(1, basic)
	if err := old.SelectMethod(checkout.MethodPix); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resumesCheckout(old, "Master") {
		t.Fatal("plan change must restart the flow")
	}

	m.Abandon(old.ID)
	if _, ok := m.Get(old.ID); ok {
		t.Fatal("old session still retrievable after restart")
	}

	master, _ := plans.ByName("Master")
	s := m.Create(1, master)
	if s.Plan.Name != "Master" {
		t.Fatalf("new session plan = %q", s.Plan.Name)
	}
	if s.State() != checkout.StateSelectingMethod {
		t.Fatalf("new session state = %q, want %q", s.State(), checkout.StateSelectingMethod)
	}
}
