package config

import (
	"flag"
	"os"
	"time"

	"github.com/SinaFr/todolist-backend/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      session cookie lifetime, minutes
//	-k          mark the session cookie Secure (behind TLS)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The lifetime
// flag is accepted as an integer in minutes and converted to time.Duration.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionCookieLifetime := fs.Int("t", int(config.SessionCookieLifetime.Minutes()), "session cookie lifetime (in minutes)")

	fs.BoolVar(&config.SecureCookie, "k", config.SecureCookie, "set the Secure attribute on the session cookie")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionCookieLifetime = time.Duration(*sessionCookieLifetime) * time.Minute
}
