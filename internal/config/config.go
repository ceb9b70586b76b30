package config

import (
	"fmt"
	"net"

	"github.com/spf13/viper"
)

// Config holds the environment-derived settings. Key names follow the
// deployment's existing environment contract.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`

	DatabaseIP   string `mapstructure:"DATABASE_IP"`
	DatabasePort string `mapstructure:"DATABASE_PORT"`
	PGUser       string `mapstructure:"PGUSER"`
	PGPassword   string `mapstructure:"PGPASSWORD"`
	PGDatabase   string `mapstructure:"PGDATABASE"`

	FluentIP   string `mapstructure:"FLUENT_IP"`
	FluentPort string `mapstructure:"FLUENT_PORT"`

	// Base URL of the subscriber lookup service.
	UporabnikiURL string `mapstructure:"UPORABNIKI_IP"`
}

// Load reads configuration from an optional config file in path and the
// environment. Environment variables override file values.
func Load(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("SERVER_PORT", "5013")
	viper.SetDefault("DATABASE_IP", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("PGUSER", "postgres")
	viper.SetDefault("PGPASSWORD", "")
	viper.SetDefault("PGDATABASE", "postgres")
	viper.SetDefault("FLUENT_IP", "")
	viper.SetDefault("FLUENT_PORT", "24224")
	viper.SetDefault("UPORABNIKI_IP", "")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// The config file is optional; everything can come from the
		// environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DatabaseIP, c.DatabasePort, c.PGUser, c.PGPassword, c.PGDatabase)
}

// ShipperAddr returns the log shipper host:port, or "" when log shipping
// is not configured.
func (c *Config) ShipperAddr() string {
	if c.FluentIP == "" {
		return ""
	}
	return net.JoinHostPort(c.FluentIP, c.FluentPort)
}
