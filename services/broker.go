package services

import (
	"copyadmin/database"
	"copyadmin/models"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// Known provider health endpoints. Unknown providers fail the check.
var brokerEndpoints = map[string]string{
	"zerodha":  "https://api.kite.trade",
	"upstox":   "https://api.upstox.com/v2",
	"angelone": "https://apiconnect.angelbroking.com",
	"bajaj":    "https://api.bajajfinservsecurities.in",
}

// GetBrokerConfig returns the broker config for a user id.
func GetBrokerConfig(store *database.KVStore, userID string) (models.BrokerConfig, error) {
	for _, cfg := range store.BrokerConfigs() {
		if cfg.UserID == userID {
			return cfg, nil
		}
	}
	return models.BrokerConfig{}, ErrNotFound
}

// SaveBrokerConfig upserts the one config allowed per user id.
func SaveBrokerConfig(store *database.KVStore, cfg models.BrokerConfig) models.BrokerConfig {
	cfg.UpdatedAt = time.Now()
	if cfg.Status == "" {
		cfg.Status = models.BrokerStatusDisconnected
	}

	configs := store.BrokerConfigs()
	for i, existing := range configs {
		if existing.UserID == cfg.UserID {
			configs[i] = cfg
			store.SaveBrokerConfigs(configs)
			return cfg
		}
	}
	store.SaveBrokerConfigs(append(configs, cfg))
	return cfg
}

// TestBrokerConnection pings the provider endpoint and records the result
// on the stored config.
func TestBrokerConnection(store *database.KVStore, userID string) (models.BrokerConfig, error) {
	cfg, err := GetBrokerConfig(store, userID)
	if err != nil {
		return models.BrokerConfig{}, err
	}

	cfg.Status = models.BrokerStatusDisconnected
	if endpoint, ok := brokerEndpoints[cfg.Provider]; ok {
		client := resty.New().SetTimeout(10 * time.Second)
		resp, err := client.R().Get(endpoint)
		if err == nil && resp.StatusCode() < 500 {
			cfg.Status = models.BrokerStatusConnected
		} else if err != nil {
			log.Printf("Broker %s unreachable for %s: %v", cfg.Provider, userID, err)
		}
	}

	return SaveBrokerConfig(store, cfg), nil
}
