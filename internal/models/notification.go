package models

// Notification is a user-facing stock alert. ID is stable for a given kind
// and item so the UI can key and deduplicate entries.
type Notification struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	ItemID   int    `json:"item_id"`
	ItemName string `json:"item_name"`
}
