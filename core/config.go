package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string
		AppName      string
		Build        string
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string

		Server   ServerConfig
		Database DatabaseConfig
		Session  SessionConfig
		Auth     AuthConfig
	}

	ServerConfig struct {
		Host            string
		Port            int
		OpenTaskAPI     bool // serve /api/tasks without a session
		DisableReqLogs  bool
		ShutdownTimeout time.Duration
	}

	DatabaseConfig struct {
		Engine       string // mysql | postgres | memory
		Host         string
		Port         int
		User         string
		Password     string
		Name         string
		DisableTLS   bool
		MaxOpenConns int
	}

	SessionConfig struct {
		CookieName  string
		TTL         time.Duration
		CleanupSpec string
	}

	AuthConfig struct {
		PasswordScheme string // plain | bcrypt
		BcryptCost     int
	}
)

func (c ServerConfig) Address() string {
	return c.Host + ":" + itoa(c.Port)
}

func (c DatabaseConfig) Address() string {
	return c.Host + ":" + itoa(c.Port)
}

// NewConfig reads the configuration from defaults, `config/.env.<env>` and the environment.
// Environment variables are prefixed with the upper-cased ENV, e.g. DEV_DATABASE_HOST.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Kampus Portal")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "pkm9-wq)en4$+57=dz&kampus2(h!x)#*c2(#yg4h^$cegm2emy")
	conf.SetDefault("rollbarToken", "")

	conf.SetDefault("server.host", "")
	conf.SetDefault("server.port", 3000)
	conf.SetDefault("server.openTaskAPI", false)
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("server.shutdownTimeout", 10*time.Second)

	conf.SetDefault("database.engine", "mysql")
	conf.SetDefault("database.host", "localhost")
	conf.SetDefault("database.port", 3306)
	conf.SetDefault("database.user", "root")
	conf.SetDefault("database.password", "")
	conf.SetDefault("database.name", "pkm_db")
	conf.SetDefault("database.disableTLS", true)
	conf.SetDefault("database.maxOpenConns", 10)

	conf.SetDefault("session.cookieName", "kampus_session")
	conf.SetDefault("session.ttl", 24*time.Hour)
	conf.SetDefault("session.cleanupSpec", "@every 1m")

	conf.SetDefault("auth.passwordScheme", "plain")
	conf.SetDefault("auth.bcryptCost", 10)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	if root, err := Getwd(); err == nil {
		dotEnvPath := filepath.Join(root, "config", ".env."+strings.ToLower(env))
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
		}
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		SecretKey:    conf.GetString("secretKey"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            conf.GetString("server.host"),
			Port:            conf.GetInt("server.port"),
			OpenTaskAPI:     conf.GetBool("server.openTaskAPI"),
			DisableReqLogs:  conf.GetBool("server.disableReqLogs"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
		},
		Database: DatabaseConfig{
			Engine:       strings.ToLower(conf.GetString("database.engine")),
			Host:         conf.GetString("database.host"),
			Port:         conf.GetInt("database.port"),
			User:         conf.GetString("database.user"),
			Password:     conf.GetString("database.password"),
			Name:         conf.GetString("database.name"),
			DisableTLS:   conf.GetBool("database.disableTLS"),
			MaxOpenConns: conf.GetInt("database.maxOpenConns"),
		},
		Session: SessionConfig{
			CookieName:  conf.GetString("session.cookieName"),
			TTL:         conf.GetDuration("session.ttl"),
			CleanupSpec: conf.GetString("session.cleanupSpec"),
		},
		Auth: AuthConfig{
			PasswordScheme: strings.ToLower(conf.GetString("auth.passwordScheme")),
			BcryptCost:     conf.GetInt("auth.bcryptCost"),
		},
	}
}
