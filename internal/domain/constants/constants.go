// Package constants holds configuration values shared across infrastructure packages.
package constants

// Event publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Geocoding providers.
const (
	GeocodingProviderNominatim = "nominatim"
	GeocodingProviderTrueWay   = "trueway"
)

// Account lock providers.
const (
	LockProviderMemory = "memory"
	LockProviderRedis  = "redis"
)
