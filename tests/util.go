package testutil

import (
	"io/ioutil"
	"log"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/dashboard"
	logsvc "github.com/campusunite/backend/services/logger"
)

// NewConfig returns the config used by tests: debug off, test mode on, request logs disabled.
func NewConfig() *core.Config {
	return &core.Config{
		AppName:   "Campus Unite",
		Env:       "TEST",
		Build:     "test",
		TestMode:  true,
		SecretKey: "secret",
		Server: core.ServerConfig{
			Host:                      "localhost",
			JWTExpirationDelta:        10 * time.Minute,
			JWTRefreshExpirationDelta: 4 * time.Hour,
			DisableReqLogs:            true,
		},
		Dashboard: core.DashboardConfig{
			InitialPoints:    250,
			RSVPPoints:       dashboard.DefaultRules.RSVPPoints,
			BadgesEarned:     dashboard.DefaultRules.BadgesEarned,
			RecommendedCount: dashboard.DefaultRules.RecommendedCount,

			SessionIdleTimeout: 4 * time.Hour,
			EvictionInterval:   time.Hour,
		},
	}
}

// NewLogger returns a silent logger with Rollbar disabled.
func NewLogger() core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), NewConfig())
	logger.Enable(false)
	return logger
}

func NewValidate() *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, core.NewTranslator())
	return validate
}

func ValidProfile(t *testing.T) dashboard.Profile {
	t.Helper()
	return dashboard.Profile{
		FullName:  "Asha Rao",
		Email:     "asha@college.edu",
		Phone:     "+91 98765 43210",
		DOB:       "2003-04-12",
		College:   "IIT Delhi",
		Year:      "3",
		Branch:    "CSE",
		Interests: []string{"AI/ML", "Music"},
	}
}
