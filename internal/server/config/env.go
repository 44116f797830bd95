package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Values that do
// not parse are ignored, keeping whatever the previous layer set.
//
// Recognized variables:
//
//	ADDRESS                  HTTP bind address
//	DATABASE_DSN             PostgreSQL DSN
//	JWT_SECRET_KEY           HMAC secret for signing tokens
//	SESSION_COOKIE_LIFETIME  Go duration string, e.g. "1h"
//	SECURE_COOKIE            bool
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("SESSION_COOKIE_LIFETIME"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionCookieLifetime = d
		}
	}
	if v, ok := os.LookupEnv("SECURE_COOKIE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.SecureCookie = b
		}
	}
}
