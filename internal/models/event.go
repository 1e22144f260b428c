package models

// PhotoEvent is the lifecycle event published to Kafka after a photo is
// uploaded, updated, or deleted.
type PhotoEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	PhotoID   int64  `json:"photo_id"`
	OwnerID   string `json:"owner_id"`
	Action    string `json:"action"`
}
