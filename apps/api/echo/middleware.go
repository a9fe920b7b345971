package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusunite/backend/core/dashboard"
)

// sessionMiddleware loads the dashboard session identified by the token's subject.
func sessionMiddleware(svc dashboard.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			sess, err := svc.Get(ctx.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Cause(err) == dashboard.ErrSessionNotFound {
					return errSessionNotFound
				}
				return errors.Wrap(err, "finding session")
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

func getContextSession(ctx echo.Context) (dashboard.Session, error) {
	if sess, ok := ctx.Get(contextSessionKey).(dashboard.Session); ok {
		return sess, nil
	}
	return dashboard.Session{}, errNotFoundInCtx
}
