package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/dashboard"
	"github.com/campusunite/backend/core/event"
)

// ToastFeed hands out the toasts a session has not seen yet.
type ToastFeed interface {
	Drain(sessionID string) []core.Notification
}

type dashboardApi struct {
	svc      dashboard.Service
	feed     ToastFeed
	tokens   *tokenIssuer
	validate *validator.Validate
}

func registerDashboardAPI(
	g *echo.Group,
	svc dashboard.Service,
	feed ToastFeed,
	tokens *tokenIssuer,
	validate *validator.Validate,
) {
	api := dashboardApi{
		svc:      svc,
		feed:     feed,
		tokens:   tokens,
		validate: validate,
	}

	g.POST("/sessions", api.start)

	dg := g.Group("/dashboard", tokens.middleware(), sessionMiddleware(svc))
	dg.GET("", api.render)
	dg.DELETE("", api.logout)
	dg.POST("/token-refresh", api.refreshToken)
	dg.POST("/onboarding", api.completeOnboarding)
	dg.PUT("/page", api.setActivePage)
	dg.POST("/sidebar", api.toggleSidebar)
	dg.GET("/stats", api.stats)
	dg.GET("/notifications", api.notifications)

	eg := dg.Group("/events")
	eg.GET("", api.listEvents(func(s dashboard.State) []event.Event { return s.Events }))
	eg.GET("/upcoming", api.listEvents(dashboard.State.UpcomingRSVPs))
	eg.GET("/past", api.listEvents(dashboard.State.PastRSVPs))
	eg.GET("/saved", api.listEvents(dashboard.State.SavedEvents))
	eg.GET("/recommended", api.listEvents(dashboard.State.Recommended))
	eg.POST("/:id/rsvp", api.toggle(func(id string) dashboard.Action { return dashboard.ToggleRSVP{EventID: id} }))
	eg.POST("/:id/bookmark", api.toggle(func(id string) dashboard.Action { return dashboard.ToggleBookmark{EventID: id} }))
	eg.POST("/:id/reminder", api.toggle(func(id string) dashboard.Action { return dashboard.ToggleReminder{EventID: id} }))
}

// Handlers

func (api *dashboardApi) start(ctx echo.Context) error {
	sess, err := api.svc.Start(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "starting session")
	}
	token, err := api.tokens.generate(api.tokens.claims(sess.ID))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusCreated, SessionResponse{
		Token:     token,
		Dashboard: dashboard.Render(sess.Store.State()),
	})
}

func (api *dashboardApi) render(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "retrieving session from context")
	}
	return ctx.JSON(http.StatusOK, dashboard.Render(sess.Store.State()))
}

func (api *dashboardApi) logout(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "retrieving session from context")
	}
	if err = api.svc.Logout(ctx.Request().Context(), sess.ID); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *dashboardApi) refreshToken(ctx echo.Context) error {
	token, err := api.tokens.refresh(ctx)
	if err != nil {
		return errors.Wrap(err, "refreshing token")
	}
	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (api *dashboardApi) completeOnboarding(ctx echo.Context) error {
	var data dashboard.Profile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Profile")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	return api.dispatch(ctx, dashboard.CompleteOnboarding{Profile: data})
}

func (api *dashboardApi) setActivePage(ctx echo.Context) error {
	var data PageRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to PageRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	err := api.dispatch(ctx, dashboard.SetActivePage{Page: dashboard.Page(data.Page)})
	if errors.Cause(err) == dashboard.ErrUnknownPage {
		return core.NewValidationError(err, errUnknownPageField)
	}
	return err
}

func (api *dashboardApi) toggleSidebar(ctx echo.Context) error {
	return api.dispatch(ctx, dashboard.ToggleSidebar{})
}

func (api *dashboardApi) toggle(action func(eventID string) dashboard.Action) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return api.dispatch(ctx, action(ctx.Param("id")))
	}
}

func (api *dashboardApi) stats(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "retrieving session from context")
	}
	return ctx.JSON(http.StatusOK, sess.Store.State().Stats())
}

func (api *dashboardApi) listEvents(view func(dashboard.State) []event.Event) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sess, err := getContextSession(ctx)
		if err != nil {
			return errors.Wrap(err, "retrieving session from context")
		}
		state := sess.Store.State()
		return ctx.JSON(http.StatusOK, state.Cards(view(state)))
	}
}

func (api *dashboardApi) notifications(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "retrieving session from context")
	}
	return ctx.JSON(http.StatusOK, api.feed.Drain(sess.ID))
}

// dispatch applies `action` to the context session and responds with the re-rendered dashboard
// along with the toasts the session has not seen yet.
func (api *dashboardApi) dispatch(ctx echo.Context, action dashboard.Action) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "retrieving session from context")
	}
	state, _, err := api.svc.Dispatch(ctx.Request().Context(), sess.ID, action)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DispatchResponse{
		Dashboard:     dashboard.Render(state),
		Notifications: api.feed.Drain(sess.ID),
	})
}

type (
	PageRequest struct {
		Page string `json:"page" validate:"required"`
	}

	SessionResponse struct {
		Token     string         `json:"token"`
		Dashboard dashboard.View `json:"dashboard"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}

	DispatchResponse struct {
		Dashboard     dashboard.View      `json:"dashboard"`
		Notifications []core.Notification `json:"notifications"`
	}
)

func (pr *PageRequest) Validate(validate *validator.Validate) error {
	pr.Page = core.CleanString(pr.Page, true /* lower */)
	return validate.Struct(pr)
}
