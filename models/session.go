package models

// Conversation steps. Each step decides how the next user message is
// interpreted; see services.Chatbot.Respond.
const (
	StepInit          = "init"
	StepOrderItems    = "order_items"
	StepDeliveryType  = "delivery_type"
	StepAddress       = "address"
	StepContact       = "contact"
	StepPaymentMethod = "payment_method"
	StepConfirm       = "confirm"
	StepDone          = "done"
)

const (
	SenderUser = "You"
	SenderBot  = "Bot"
)

type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Session is the per-conversation state. It is created at StepInit,
// mutated only by the chat engine one turn at a time, and cleared by Reset.
type Session struct {
	Step             string        `json:"step"`
	OrderText        string        `json:"order_text"`
	DeliveryType     string        `json:"delivery_type"`
	Address          string        `json:"address"`
	Contact          string        `json:"contact"`
	PaymentMethod    string        `json:"payment_method"`
	TrackingNumber   string        `json:"tracking_number"`
	DeliveryEstimate string        `json:"delivery_estimate"`
	History          []ChatMessage `json:"history"`
}

func NewSession() *Session {
	return &Session{Step: StepInit}
}

// Reset clears every field back to a fresh session.
func (s *Session) Reset() {
	*s = Session{Step: StepInit}
}
