// Package constants holds identifiers shared across configuration and infrastructure.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Record store providers
const (
	StoreProviderMemory    = "memory"
	StoreProviderFirestore = "firestore"
	StoreProviderPostgres  = "postgres"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
