package config

// Defaults
const (
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "inventory-service"
	DefaultDBName         = "inventory"
	DefaultKafkaTopic     = "inventory.notifications"
	DefaultDeadLetterPath = "logs/event_deadletter.jsonl"
	MinJWTSecretLength    = 32
)

// Configuration file paths
const (
	ConfigPathCategories = "configs/categories.json"
)
