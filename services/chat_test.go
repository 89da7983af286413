package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"restaurant-telegram/models"
)

func newTestChatbot(menuGen MenuGenerator) *Chatbot {
	tracker := NewTrackerWithSource(rand.New(rand.NewSource(1)))
	return NewChatbot("Korean", DefaultCatalog(), tracker, menuGen)
}

func TestFullPickupFlow(t *testing.T) {
	ctx := context.Background()
	c := newTestChatbot(nil)
	s := models.NewSession()

	steps := []struct {
		input    string
		wantStep string
	}{
		{"I want to order", models.StepOrderItems},
		{"1 hotteok", models.StepDeliveryType},
		{"Pickup", models.StepContact},
		{"555-1234", models.StepPaymentMethod},
		{"cash", models.StepConfirm},
	}
	for _, st := range steps {
		resp := c.Respond(ctx, s, st.input)
		if resp == "" {
			t.Fatalf("input %q: empty response", st.input)
		}
		if s.Step != st.wantStep {
			t.Fatalf("input %q: step = %s, want %s", st.input, s.Step, st.wantStep)
		}
	}

	// The summary at confirm has no address line for pickup.
	summary := s.History[len(s.History)-1].Text
	if !strings.Contains(summary, "1 x Hotteok") {
		t.Errorf("summary missing item line:\n%s", summary)
	}
	if strings.Contains(summary, "Address") {
		t.Errorf("pickup summary must not contain an address line:\n%s", summary)
	}

	resp := c.Respond(ctx, s, "confirm")
	if s.Step != models.StepDone {
		t.Fatalf("after confirm: step = %s, want done", s.Step)
	}
	if !trackingCodeRe.MatchString(s.TrackingNumber) {
		t.Errorf("tracking number %q does not match ORD-\\d{6}", s.TrackingNumber)
	}
	if s.DeliveryEstimate == "" {
		t.Error("delivery estimate not set after confirm")
	}
	if !strings.Contains(resp, s.TrackingNumber) {
		t.Errorf("confirmation should echo the tracking number:\n%s", resp)
	}
}

func TestDeliveryRoutesThroughAddress(t *testing.T) {
	ctx := context.Background()
	c := newTestChatbot(nil)
	s := models.NewSession()

	c.Respond(ctx, s, "order")
	c.Respond(ctx, s, "2 bibimbap")
	c.Respond(ctx, s, "delivery please")
	if s.Step != models.StepAddress {
		t.Fatalf("step = %s, want address", s.Step)
	}
	if s.DeliveryType != "Delivery Please" {
		t.Errorf("delivery type = %q, want title-cased input", s.DeliveryType)
	}
	c.Respond(ctx, s, "12 Main St")
	if s.Step != models.StepContact {
		t.Fatalf("step after address = %s, want contact", s.Step)
	}
	if s.Address != "12 Main St" {
		t.Errorf("address = %q", s.Address)
	}
}

func TestInitMenuAndHelp(t *testing.T) {
	ctx := context.Background()

	t.Run("static menu", func(t *testing.T) {
		c := newTestChatbot(nil)
		s := models.NewSession()
		resp := c.Respond(ctx, s, "Show me the menu")
		if !strings.Contains(resp, "Bibimbap - $10.99") {
			t.Errorf("static menu missing items:\n%s", resp)
		}
		if s.Step != models.StepInit {
			t.Errorf("menu must not advance the step, got %s", s.Step)
		}
	})

	t.Run("generated menu", func(t *testing.T) {
		c := newTestChatbot(MockGenerator{})
		s := models.NewSession()
		resp := c.Respond(ctx, s, "menu")
		if !strings.Contains(resp, "Chef's Choice") {
			t.Errorf("expected generated menu:\n%s", resp)
		}
	})

	t.Run("generator failure falls back to static", func(t *testing.T) {
		c := newTestChatbot(failingGenerator{})
		s := models.NewSession()
		resp := c.Respond(ctx, s, "menu")
		if !strings.Contains(resp, "Bibimbap - $10.99") {
			t.Errorf("expected static fallback menu:\n%s", resp)
		}
	})

	t.Run("help text", func(t *testing.T) {
		c := newTestChatbot(nil)
		s := models.NewSession()
		resp := c.Respond(ctx, s, "hello there")
		if !strings.Contains(resp, "menu") || !strings.Contains(resp, "order") {
			t.Errorf("help text should mention menu and order:\n%s", resp)
		}
		if s.Step != models.StepInit {
			t.Errorf("help must not advance the step, got %s", s.Step)
		}
	})
}

type failingGenerator struct{}

func (failingGenerator) GenerateMenu(ctx context.Context, restaurant string) (string, error) {
	return "", errors.New("upstream unavailable")
}

func TestTrackShortcut(t *testing.T) {
	ctx := context.Background()
	c := newTestChatbot(nil)
	s := models.NewSession()

	// No order placed yet: any code is invalid, and the step is untouched.
	resp := c.Respond(ctx, s, "track ORD-123456")
	if !strings.Contains(resp, "Invalid or unknown tracking number") {
		t.Errorf("expected invalid-code response:\n%s", resp)
	}
	if s.Step != models.StepInit {
		t.Errorf("track must not change the step, got %s", s.Step)
	}

	for _, input := range []string{"order", "1 sundae", "pickup", "555-1234", "card", "yes"} {
		c.Respond(ctx, s, input)
	}
	if s.Step != models.StepDone {
		t.Fatalf("step = %s, want done", s.Step)
	}

	resp = c.Respond(ctx, s, "track "+strings.ToLower(s.TrackingNumber))
	if !strings.Contains(resp, s.TrackingNumber) {
		t.Errorf("status response should echo the code:\n%s", resp)
	}
	found := false
	for _, status := range trackingStatuses {
		if strings.Contains(resp, status) {
			found = true
		}
	}
	if !found {
		t.Errorf("status not drawn from the fixed set:\n%s", resp)
	}
	if s.Step != models.StepDone {
		t.Errorf("track must not change the step, got %s", s.Step)
	}

	resp = c.Respond(ctx, s, "track ORD-000000")
	if !strings.Contains(resp, "Invalid or unknown tracking number") {
		t.Errorf("mismatched code must be rejected:\n%s", resp)
	}
}

func TestConfirmCancel(t *testing.T) {
	ctx := context.Background()
	c := newTestChatbot(nil)
	s := models.NewSession()

	for _, input := range []string{"order", "1 bingsu", "pickup", "555-1234", "card"} {
		c.Respond(ctx, s, input)
	}
	resp := c.Respond(ctx, s, "no, changed my mind")
	if !strings.Contains(resp, "Order cancelled") {
		t.Errorf("expected cancellation message:\n%s", resp)
	}
	if s.Step != models.StepConfirm {
		t.Errorf("cancellation must leave the step unchanged, got %s", s.Step)
	}
	if s.TrackingNumber != "" {
		t.Error("cancelled order must not have a tracking number")
	}
}

func TestDoneRestatesTrackingInfo(t *testing.T) {
	ctx := context.Background()
	c := newTestChatbot(nil)
	s := models.NewSession()

	for _, input := range []string{"order", "2 banchan", "pickup", "555-1234", "card", "confirm"} {
		c.Respond(ctx, s, input)
	}
	code := s.TrackingNumber
	resp := c.Respond(ctx, s, "anything at all")
	if !strings.Contains(resp, code) || !strings.Contains(resp, s.DeliveryEstimate) {
		t.Errorf("done step should restate tracking info:\n%s", resp)
	}
	if s.Step != models.StepDone {
		t.Errorf("done is terminal, got %s", s.Step)
	}
}

// Every (step, arbitrary input) pair yields a defined next step and a
// non-empty response.
func TestTransitionsAreTotal(t *testing.T) {
	ctx := context.Background()
	validSteps := map[string]bool{
		models.StepInit: true, models.StepOrderItems: true,
		models.StepDeliveryType: true, models.StepAddress: true,
		models.StepContact: true, models.StepPaymentMethod: true,
		models.StepConfirm: true, models.StepDone: true,
	}
	for step := range validSteps {
		c := newTestChatbot(nil)
		s := models.NewSession()
		s.Step = step
		resp := c.Respond(ctx, s, "xyzzy")
		if resp == "" {
			t.Errorf("step %s: empty response", step)
		}
		if !validSteps[s.Step] {
			t.Errorf("step %s: transitioned to unknown step %q", step, s.Step)
		}
	}
}

func TestHistoryRecordsBothSides(t *testing.T) {
	ctx := context.Background()
	c := newTestChatbot(nil)
	s := models.NewSession()

	resp := c.Respond(ctx, s, "menu")
	if len(s.History) != 2 {
		t.Fatalf("history has %d entries, want 2", len(s.History))
	}
	if s.History[0].Sender != models.SenderUser || s.History[0].Text != "menu" {
		t.Errorf("first entry should be the user message: %+v", s.History[0])
	}
	if s.History[1].Sender != models.SenderBot || s.History[1].Text != resp {
		t.Errorf("second entry should be the bot response: %+v", s.History[1])
	}
}
