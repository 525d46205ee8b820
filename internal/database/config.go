package database

import (
	"fmt"
)

// DatabaseConfig describes how to reach the durable order store. Driver
// selects between the PostgreSQL fields and the SQLite Path.
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver string

	// PostgreSQL
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite
	Path string
}

// String returns a representation safe for startup logs, with the password
// masked. Card data never passes through here; only connection settings do.
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds the driver-specific data source name
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		return c.Path
	default:
		return ""
	}
}
