package models

// ReminderPayload is the payload carried by a scheduled reminder task.
type ReminderPayload struct {
	ID         string `json:"id"` // recipient id (party customer or supplier)
	ReminderID string `json:"reminderId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
	Target     string `json:"target"` // "customer" or "supplier"
}
