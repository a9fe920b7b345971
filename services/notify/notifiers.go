package notifysvc

import (
	"context"
	"fmt"

	"github.com/campusunite/backend/core"
)

type logNotifier struct {
	logger core.Logger
}

// NewLogNotifier writes every toast to the logger.
func NewLogNotifier(logger core.Logger) core.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(_ context.Context, notifications ...core.Notification) {
	for _, notif := range notifications {
		n.logger.Debug(fmt.Sprintf("toast [%s] session=%s event=%s: %s", notif.Level, notif.SessionID, notif.EventID, notif.Message))
	}
}

type multiNotifier []core.Notifier

// NewMulti fans notifications out to every notifier, in order.
func NewMulti(notifiers ...core.Notifier) core.Notifier {
	return multiNotifier(notifiers)
}

func (m multiNotifier) Notify(ctx context.Context, notifications ...core.Notification) {
	for _, n := range m {
		n.Notify(ctx, notifications...)
	}
}
