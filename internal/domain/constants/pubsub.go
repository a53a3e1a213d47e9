package constants

// Milestone publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Attribute keys set on published milestone messages
const (
	AttrMilestoneID   = "milestone_id"
	AttrMilestoneType = "milestone_type"
	AttrDeliveryID    = "delivery_id"
)
