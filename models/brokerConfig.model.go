package models

import "time"

const (
	BrokerStatusConnected    = "connected"
	BrokerStatusDisconnected = "disconnected"
)

// BrokerConfig holds broker credentials for one user (teacher or student).
// One config per user id.
type BrokerConfig struct {
	UserID     string    `json:"userId"`
	Provider   string    `json:"provider"`
	APIKey     string    `json:"apiKey"`
	APISecret  string    `json:"apiSecret"`
	ClientCode string    `json:"clientCode"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
