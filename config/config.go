package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// Runtime salon settings (services, staff, currency, webhooks) live in Cache
// instead, because those are editable from the settings screens and backed by
// the database.
type Config struct {
	JWTSecret string
}

// AppConfig holds the application-wide configuration
var AppConfig Config
