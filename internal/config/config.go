package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `env-default:"local" yaml:"env"`                          // Env is the current environment: local, dev, prod.
	Postgres PostgresConfig `                    yaml:"postgres" env-required:"true"` // Postgres holds the database configuration
	Server   ServerConfig   `                    yaml:"server"`                       // Server holds the HTTP server configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Dbname   string `yaml:"db_name"`                     // Dbname is the name of the database.
}

// ServerConfig struct holds the configuration details for the HTTP listener.
type ServerConfig struct {
	Host            string        `yaml:"host"`                              // Host is the address the server binds to.
	Port            string        `yaml:"port"             env-default:"8080"` // Port is the listen port.
	ReadTimeout     time.Duration `yaml:"read_timeout"     env-default:"5s"`   // ReadTimeout bounds request reads.
	WriteTimeout    time.Duration `yaml:"write_timeout"    env-default:"10s"`  // WriteTimeout bounds response writes.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"` // ShutdownTimeout bounds graceful stop.
}

// MustLoad loads the configuration from a YAML file and returns a Config struct.
// A `.env` file next to the binary is honoured, and every key falls back to an
// environment variable so the app can run without a config file at all.
func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	viper.SetDefault("env", "local")
	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 5*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)

	mustBindEnv("env", "STAFFDESK_ENV")
	mustBindEnv("postgres.host", "DB_HOST")
	mustBindEnv("postgres.port", "DB_PORT")
	mustBindEnv("postgres.user", "DB_USERNAME")
	mustBindEnv("postgres.password", "DB_PASSWORD")
	mustBindEnv("postgres.db_name", "DB_NAME")
	mustBindEnv("server.host", "SERVER_HOST")
	mustBindEnv("server.port", "SERVER_PORT")

	return &Config{
		Env: viper.GetString("env"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("postgres.host"),
			Port:     viper.GetString("postgres.port"),
			User:     viper.GetString("postgres.user"),
			Password: viper.GetString("postgres.password"),
			Dbname:   viper.GetString("postgres.db_name"),
		},
		Server: ServerConfig{
			Host:            viper.GetString("server.host"),
			Port:            viper.GetString("server.port"),
			ReadTimeout:     viper.GetDuration("server.read_timeout"),
			WriteTimeout:    viper.GetDuration("server.write_timeout"),
			ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		},
	}
}

func mustBindEnv(key, env string) {
	if err := viper.BindEnv(key, env); err != nil {
		panic("failed to bind env variable " + env + ": " + err.Error())
	}
}
