package dig_container

import (
	"fmt"
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/campusunite/backend/apps/api/echo"
	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/dashboard"
	"github.com/campusunite/backend/core/event"
	logsvc "github.com/campusunite/backend/services/logger"
	notifysvc "github.com/campusunite/backend/services/notify"
	"github.com/campusunite/backend/storage/catalogue"
	inmemdb "github.com/campusunite/backend/storage/database/inmem"
)

type ToastLoggerParam struct {
	dig.In
	Logger core.Logger `name:"toastLogger"`
}

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newToastLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "TOAST : ", log.LstdFlags|log.Lmicroseconds)
	return logsvc.NewRollbarLogger(stdLogger, conf)
}

func newCatalogue(conf *core.Config, logger core.Logger) event.Catalogue {
	cat, err := catalogue.New(conf.Dashboard.CataloguePath)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading event catalogue: %v", err), err)
	}
	return cat
}

func newFeed() (*notifysvc.Feed, echoapi.ToastFeed) {
	feed := notifysvc.NewFeed()
	return feed, feed
}

func newNotifier(feed *notifysvc.Feed, loggerParam ToastLoggerParam) core.Notifier {
	return notifysvc.NewMulti(feed, notifysvc.NewLogNotifier(loggerParam.Logger))
}

func newDashboardService(
	conf *core.Config,
	logger core.Logger,
	repo dashboard.SessionRepository,
	cat event.Catalogue,
	notifier core.Notifier,
	feed *notifysvc.Feed,
) dashboard.Service {
	return dashboard.NewService(dashboard.Deps{
		Repo:          repo,
		Catalogue:     cat,
		Notifier:      notifier,
		Logger:        logger,
		InitialPoints: conf.Dashboard.InitialPoints,
		Rules: dashboard.Rules{
			RSVPPoints:       conf.Dashboard.RSVPPoints,
			BadgesEarned:     conf.Dashboard.BadgesEarned,
			RecommendedCount: conf.Dashboard.RecommendedCount,
		},
		OnLogout: feed.Forget,
	})
}

func newServer(
	conf *core.Config,
	logger core.Logger,
	svc dashboard.Service,
	feed echoapi.ToastFeed,
	validate *validator.Validate,
	translator ut.Translator,
) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:         conf,
		Logger:       logger,
		DashboardSvc: svc,
		Feed:         feed,
		Validate:     validate,
		Translator:   translator,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newToastLogger, dig.Name("toastLogger")))
	must(c.Provide(newCatalogue))
	must(c.Provide(inmemdb.Open))
	must(c.Provide(inmemdb.NewSessionRepository))
	must(c.Provide(newFeed))
	must(c.Provide(newNotifier))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newDashboardService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
