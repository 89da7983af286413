package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"restaurant-telegram/models"
)

const menuGenTimeout = 20 * time.Second

// Chatbot drives the turn-based ordering conversation. Each call to Respond
// consumes one user message, mutates the session and returns exactly one
// reply. The caller owns the session and serializes turns per conversation.
type Chatbot struct {
	restaurant string
	catalog    *Catalog
	tracker    *Tracker
	menuGen    MenuGenerator // optional; nil means static menu only
}

func NewChatbot(restaurant string, catalog *Catalog, tracker *Tracker, menuGen MenuGenerator) *Chatbot {
	return &Chatbot{
		restaurant: restaurant,
		catalog:    catalog,
		tracker:    tracker,
		menuGen:    menuGen,
	}
}

func (c *Chatbot) Catalog() *Catalog {
	return c.catalog
}

// Respond processes one turn and appends both sides to the session history.
func (c *Chatbot) Respond(ctx context.Context, s *models.Session, input string) string {
	input = strings.TrimSpace(input)
	response := c.process(ctx, s, input)
	s.History = append(s.History,
		models.ChatMessage{Sender: models.SenderUser, Text: input},
		models.ChatMessage{Sender: models.SenderBot, Text: response},
	)
	return response
}

func (c *Chatbot) process(ctx context.Context, s *models.Session, input string) string {
	lower := strings.ToLower(input)

	// Tracking shortcut works at any step and never changes it.
	if strings.HasPrefix(lower, "track ") {
		fields := strings.Fields(input)
		code := strings.ToUpper(fields[len(fields)-1])
		if s.TrackingNumber != "" && code == s.TrackingNumber {
			return fmt.Sprintf("📦 Status for %s: %s", code, c.tracker.Status())
		}
		return "❌ Invalid or unknown tracking number. Please check and try again."
	}

	switch s.Step {
	case models.StepInit:
		if strings.Contains(lower, "menu") {
			return fmt.Sprintf("Here is the menu for %s:\n%s", c.restaurant, c.menuText(ctx))
		}
		if strings.Contains(lower, "order") {
			s.Step = models.StepOrderItems
			return "Great! What would you like to order?"
		}
		return "You can say 'Show me the menu' or 'I want to order'."

	case models.StepOrderItems:
		s.OrderText = input
		s.Step = models.StepDeliveryType
		return "Would you like Delivery or Pickup?"

	case models.StepDeliveryType:
		s.DeliveryType = titleCase(input)
		if strings.Contains(lower, "delivery") {
			s.Step = models.StepAddress
			return "Please provide your delivery address."
		}
		s.Step = models.StepContact
		return "Please provide your contact number."

	case models.StepAddress:
		s.Address = input
		s.Step = models.StepContact
		return "Please provide your contact number."

	case models.StepContact:
		s.Contact = input
		s.Step = models.StepPaymentMethod
		return "Choose payment method: Card or Cash on Delivery"

	case models.StepPaymentMethod:
		s.PaymentMethod = titleCase(input)
		s.Step = models.StepConfirm
		return c.catalog.BuildOrderSummary(s)

	case models.StepConfirm:
		if strings.Contains(lower, "confirm") || strings.Contains(lower, "yes") {
			s.Step = models.StepDone
			s.TrackingNumber = c.tracker.NewCode()
			s.DeliveryEstimate = c.tracker.Estimate()
			return fmt.Sprintf(`✅ Order confirmed! Thank you for ordering with us. 🎉

📦 Tracking number: %s
⏰ Estimated delivery: %s

You can check your order status by typing:
track %s`, s.TrackingNumber, s.DeliveryEstimate, s.TrackingNumber)
		}
		return "Order cancelled. You can restart by saying 'I want to order'."

	case models.StepDone:
		return fmt.Sprintf(`✅ You've already placed an order.

📦 Tracking number: %s
⏰ Estimated delivery: %s

Type 'track %s' to check status.
Type 'I want to order' to place another.`, s.TrackingNumber, s.DeliveryEstimate, s.TrackingNumber)
	}

	return "I'm not sure what you mean. Try saying 'menu' or 'I want to order'."
}

// menuText prefers the generated menu and degrades to the static catalog
// menu when the generator is missing, slow or failing. Generator errors
// stay on this side of the core boundary.
func (c *Chatbot) menuText(ctx context.Context) string {
	if c.menuGen == nil {
		return c.catalog.MenuText()
	}
	genCtx, cancel := context.WithTimeout(ctx, menuGenTimeout)
	defer cancel()
	menu, err := c.menuGen.GenerateMenu(genCtx, c.restaurant)
	if err != nil {
		log.Printf("menu generation failed, using static menu: %v", err)
		return c.catalog.MenuText()
	}
	return menu
}
