package statemachine

import (
	"testing"

	"cafe-orders-api/models"
)

func TestInitialStatusByPaymentMethod(t *testing.T) {
	if got := InitialStatus(models.PaymentCash); got != models.StatusPending {
		t.Errorf("cash order should start pending, got %s", got)
	}
	if got := InitialStatus(models.PaymentUPI); got != models.StatusPaid {
		t.Errorf("upi order should start paid, got %s", got)
	}
	// Any non-cash method starts paid
	if got := InitialStatus(models.PaymentMethod("card")); got != models.StatusPaid {
		t.Errorf("non-cash order should start paid, got %s", got)
	}
}

func TestAdminForwardTransitions(t *testing.T) {
	if err := CanTransition(models.StatusPending, models.StatusCompleted, ActorAdmin); err != nil {
		t.Errorf("pending → completed by admin should be allowed: %v", err)
	}
	if err := CanTransition(models.StatusPaid, models.StatusCompleted, ActorAdmin); err != nil {
		t.Errorf("paid → completed by admin should be allowed: %v", err)
	}
}

func TestForbiddenTransitions(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		actor    string
	}{
		{models.StatusPending, models.StatusPaid, ActorAdmin},
		{models.StatusPaid, models.StatusPending, ActorAdmin},
		{models.StatusCompleted, models.StatusPending, ActorAdmin},
		{models.StatusCompleted, models.StatusPaid, ActorAdmin},
		{models.StatusPending, models.StatusCompleted, ActorCustomer},
		{models.StatusPaid, models.StatusCompleted, ActorCustomer},
	}
	for _, tc := range cases {
		if err := CanTransition(tc.from, tc.to, tc.actor); err == nil {
			t.Errorf("%s → %s by %s should be rejected", tc.from, tc.to, tc.actor)
		}
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	if nexts := ValidTransitionsFrom(models.StatusCompleted); len(nexts) != 0 {
		t.Errorf("completed must be terminal, found next states %v", nexts)
	}
}

func TestValidTransitionsFromUnfulfilledStates(t *testing.T) {
	for _, from := range []models.OrderStatus{models.StatusPending, models.StatusPaid} {
		nexts := ValidTransitionsFrom(from)
		if len(nexts) != 1 || nexts[0] != models.StatusCompleted {
			t.Errorf("from %s expected exactly [completed], got %v", from, nexts)
		}
	}
}
