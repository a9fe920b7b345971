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
	ServerConfig struct {
		Host                      string
		Address                   string
		DebugHost                 string
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
		DisableReqLogs            bool
	}

	DashboardConfig struct {
		InitialPoints    int
		RSVPPoints       int
		BadgesEarned     int
		RecommendedCount int
		CataloguePath    string // empty: built-in sample events

		SessionIdleTimeout time.Duration // defaults to Server.JWTRefreshExpirationDelta
		EvictionInterval   time.Duration
	}

	Config struct {
		AppName      string
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string
		Server       ServerConfig
		Dashboard    DashboardConfig
	}
)

// NewConfig loads the app configuration from defaults, `config/.env.<env>` (if it exists) and the environment.
// Environment variables are prefixed by the upper-cased env, eg. `DEV_SERVER_ADDRESS`.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("appName", "Campus Unite")
	conf.SetDefault("build", "dev")
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("secretKey", "k2v%9sd!tq7$wb0z&u1x8+hn3(pe4)ym*c6r^fj5_ga")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.host", "localhost")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.jwtExpirationDelta", 24*time.Hour)
	conf.SetDefault("server.jwtRefreshExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("dashboard.initialPoints", 250)
	conf.SetDefault("dashboard.rsvpPoints", 50)
	conf.SetDefault("dashboard.badgesEarned", 2)
	conf.SetDefault("dashboard.recommendedCount", 4)
	conf.SetDefault("dashboard.cataloguePath", "")
	conf.SetDefault("dashboard.sessionIdleTimeout", time.Duration(0))
	conf.SetDefault("dashboard.evictionInterval", time.Hour)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	// a session nobody can refresh a token for is dead
	idleTimeout := conf.GetDuration("dashboard.sessionIdleTimeout")
	if idleTimeout <= 0 {
		idleTimeout = conf.GetDuration("server.jwtRefreshExpirationDelta")
	}

	return &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		SecretKey:    conf.GetString("secretKey"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:                      conf.GetString("server.host"),
			Address:                   conf.GetString("server.address"),
			DebugHost:                 conf.GetString("server.debugHost"),
			ShutdownTimeout:           conf.GetDuration("server.shutdownTimeout"),
			JWTExpirationDelta:        conf.GetDuration("server.jwtExpirationDelta"),
			JWTRefreshExpirationDelta: conf.GetDuration("server.jwtRefreshExpirationDelta"),
			DisableReqLogs:            conf.GetBool("server.disableReqLogs"),
		},
		Dashboard: DashboardConfig{
			InitialPoints:    conf.GetInt("dashboard.initialPoints"),
			RSVPPoints:       conf.GetInt("dashboard.rsvpPoints"),
			BadgesEarned:     conf.GetInt("dashboard.badgesEarned"),
			RecommendedCount: conf.GetInt("dashboard.recommendedCount"),
			CataloguePath:    conf.GetString("dashboard.cataloguePath"),

			SessionIdleTimeout: idleTimeout,
			EvictionInterval:   conf.GetDuration("dashboard.evictionInterval"),
		},
	}
}
