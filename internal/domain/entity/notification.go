package entity

// Notification is a user-facing {title, body} pair requested by the tracking engine.
type Notification struct {
	Kind       MilestoneType `json:"kind"`
	DeliveryID string        `json:"delivery_id"`
	Title      string        `json:"title"`
	Body       string        `json:"body"`
}
