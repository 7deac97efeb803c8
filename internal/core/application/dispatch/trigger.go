package dispatch

// Trigger action tags. Any other value, including an absent action, selects
// the default put-order flow.
const (
	ActionComplete = "complete"
	ActionCancel   = "cancel"
	ActionMake     = "make"
	ActionUnmake   = "unmake"
)

// TriggerBody carries the customer's drink selection on a submission trigger.
type TriggerBody struct {
	UserID    string   `json:"userId"`
	Drink     string   `json:"drink"`
	Modifiers []string `json:"modifiers"`
}

// Trigger is the inbound shape every flow starts from. Which fields are
// meaningful depends on the action: submissions carry a body, barista claims
// carry a baristaUserId, terminal actions need only the orderId.
type Trigger struct {
	Action        string      `json:"action"`
	OrderID       string      `json:"orderId"`
	UserID        string      `json:"userId"`
	Body          TriggerBody `json:"body"`
	BaristaUserID string      `json:"baristaUserId"`
}

// SubmitterID resolves the submitting identity: the body's userId wins, the
// top-level one is the fallback.
func (t Trigger) SubmitterID() string {
	if t.Body.UserID != "" {
		return t.Body.UserID
	}
	return t.UserID
}
