package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds the resolved runtime configuration. It is built once at
// startup and passed explicitly into the components that need it.
type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	HTTPPort int            // HTTPPort is the port the HTTP server listens on.
	Postgres PostgresConfig // Postgres holds the database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     int    // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// MustLoad resolves the configuration and returns a Config struct.
//
// Values come from environment variables, with fixed defaults for any that
// are unset. If CONFIG_PATH points at a YAML file, it is read first and the
// environment overrides it. A non-numeric port panics: failing fast beats
// deferring the error to the first connection attempt.
func MustLoad() *Config {
	viper.Reset()

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		viper.SetConfigFile(configPath)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	viper.SetDefault("env", "local")
	viper.SetDefault("http_port", "8000")
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("postgres.db_name", "mydb")
	viper.SetDefault("postgres.user", "myuser")
	viper.SetDefault("postgres.password", "mypassword")

	bindings := map[string]string{
		"env":               "ENV",
		"http_port":         "HTTP_PORT",
		"postgres.host":     "POSTGRES_HOST",
		"postgres.port":     "POSTGRES_PORT",
		"postgres.db_name":  "POSTGRES_DB",
		"postgres.user":     "POSTGRES_USER",
		"postgres.password": "POSTGRES_PASSWORD",
	}
	for key, envName := range bindings {
		if err := viper.BindEnv(key, envName); err != nil {
			panic("failed to bind env variable " + envName + ": " + err.Error())
		}
	}

	return &Config{
		Env:      viper.GetString("env"),
		HTTPPort: mustPort("http_port"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("postgres.host"),
			Port:     mustPort("postgres.port"),
			User:     viper.GetString("postgres.user"),
			Password: viper.GetString("postgres.password"),
			Dbname:   viper.GetString("postgres.db_name"),
		},
	}
}

// mustPort reads the key as a string and panics unless it parses as an integer.
func mustPort(key string) int {
	value := viper.GetString(key)

	port, err := strconv.Atoi(value)
	if err != nil {
		panic(fmt.Sprintf("failed to parse %s as integer: %q", key, value))
	}

	return port
}
