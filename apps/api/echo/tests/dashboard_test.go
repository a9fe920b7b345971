package tests

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/campusunite/backend/apps/api/echo"
	"github.com/campusunite/backend/core"
	"github.com/campusunite/backend/core/dashboard"
	testutil "github.com/campusunite/backend/tests"
)

func TestHome(t *testing.T) {
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Campus Unite API!", rec.Body.String())
}

func TestStartSession(t *testing.T) {
	token, resp := startSession(t)

	assert.NotEmpty(t, token)
	view := resp.Dashboard
	assert.True(t, view.Onboarding)
	assert.Equal(t, dashboard.PageHome, view.Page)
	assert.Equal(t, "Campus Unite", view.Header.Title)
	assert.Equal(t, "Student", view.Header.FirstName)
	assert.Equal(t, 250, view.Header.Points)
	assert.Empty(t, view.Nav)
	assert.Nil(t, view.Content)
}

func TestAuthentication(t *testing.T) {
	token, _ := startSession(t)

	ghost, err := GenerateToken(conf, "5b6f9c1e-0000-4000-8000-000000000000")
	require.NoError(t, err)

	otherConf := testutil.NewConfig()
	otherConf.SecretKey = "not-the-secret"
	forged, err := GenerateToken(otherConf, "whatever")
	require.NoError(t, err)

	tests := []httpTest{
		{
			name:     "missing token",
			method:   http.MethodGet,
			path:     "/v1/dashboard",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "forged token",
			method:   http.MethodGet,
			path:     "/v1/dashboard",
			token:    forged,
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "invalid or expired jwt"}),
		},
		{
			name:     "unknown session",
			method:   http.MethodGet,
			path:     "/v1/dashboard",
			token:    ghost,
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, httpErr{Error: "session not found"}),
		},
		{
			name:     "valid token",
			method:   http.MethodGet,
			path:     "/v1/dashboard",
			token:    token,
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, tt.method, tt.path, tt.token, tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func TestOnboarding(t *testing.T) {
	token, _ := startSession(t)

	invalid := testutil.ValidProfile(t)
	invalid.Email = "asha@"
	invalid.DOB = "12/04/2003"
	invalid.FullName = "   "

	tests := []httpTest{
		{
			name:     "invalid profile",
			body:     marchallObj(t, invalid),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"full_name": "this field is required",
				"email":     "email must be a valid email address",
				"dob":       "enter a valid date (YYYY-MM-DD)",
			}),
		},
		{
			name:     "valid profile",
			body:     marchallObj(t, testutil.ValidProfile(t)),
			wantCode: http.StatusOK,
		},
		{
			name:     "already onboarded",
			body:     marchallObj(t, testutil.ValidProfile(t)),
			wantCode: http.StatusConflict,
			wantData: marchallObj(t, httpErr{Error: dashboard.ErrAlreadyOnboarded.Error()}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, http.MethodPost, "/v1/dashboard/onboarding", token, tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}

	rec := do(t, http.MethodGet, "/v1/dashboard", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		Onboarding bool `json:"onboarding"`
		Header     struct {
			FirstName string `json:"first_name"`
		} `json:"header"`
		Nav []dashboard.NavItem `json:"nav"`
	}
	unmarshal(t, rec, &view)
	assert.False(t, view.Onboarding)
	assert.Equal(t, "Asha", view.Header.FirstName)
	assert.Len(t, view.Nav, len(dashboard.Pages))
}

func TestOnboardingWelcomeToast(t *testing.T) {
	token, _ := startSession(t)

	rec := do(t, http.MethodPost, "/v1/dashboard/onboarding", token, marchallObj(t, testutil.ValidProfile(t)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Notifications []core.Notification `json:"notifications"`
	}
	unmarshal(t, rec, &resp)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, core.LevelSuccess, resp.Notifications[0].Level)
	assert.Equal(t, "Welcome aboard, Asha! 🎉", resp.Notifications[0].Message)
}

type dispatchResp struct {
	Dashboard struct {
		Page   dashboard.Page `json:"page"`
		Header struct {
			Points int `json:"points"`
		} `json:"header"`
		SidebarOpen bool `json:"sidebar_open"`
	} `json:"dashboard"`
	Notifications []core.Notification `json:"notifications"`
}

func TestToggleRSVP(t *testing.T) {
	token, _ := startSession(t)

	var resp dispatchResp
	rec := do(t, http.MethodPost, "/v1/dashboard/events/2/rsvp", token)
	require.Equal(t, http.StatusOK, rec.Code)
	unmarshal(t, rec, &resp)
	assert.Equal(t, 300, resp.Dashboard.Header.Points)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "RSVP confirmed! +50 points 🎉", resp.Notifications[0].Message)
	assert.Equal(t, "2", resp.Notifications[0].EventID)
	assert.False(t, resp.Notifications[0].CreatedAt.IsZero())

	// un-RSVP keeps the points and emits nothing
	resp = dispatchResp{}
	rec = do(t, http.MethodPost, "/v1/dashboard/events/2/rsvp", token)
	require.Equal(t, http.StatusOK, rec.Code)
	unmarshal(t, rec, &resp)
	assert.Equal(t, 300, resp.Dashboard.Header.Points)
	assert.Empty(t, resp.Notifications)
}

func TestToggleUnknownEvent(t *testing.T) {
	token, _ := startSession(t)

	for _, action := range []string{"rsvp", "bookmark", "reminder"} {
		t.Run(action, func(t *testing.T) {
			tt := httpTest{
				wantCode: http.StatusNotFound,
				wantData: marchallObj(t, httpErr{Error: "event not found"}),
			}
			rec := do(t, http.MethodPost, "/v1/dashboard/events/999/"+action, token)
			checkCodeAndData(t, tt, rec)
		})
	}

	rec := do(t, http.MethodGet, "/v1/dashboard/notifications", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestEventLists(t *testing.T) {
	token, _ := startSession(t)

	require.Equal(t, http.StatusOK, do(t, http.MethodPost, "/v1/dashboard/events/1/rsvp", token).Code)
	require.Equal(t, http.StatusOK, do(t, http.MethodPost, "/v1/dashboard/events/3/bookmark", token).Code)
	require.Equal(t, http.StatusOK, do(t, http.MethodPost, "/v1/dashboard/events/3/reminder", token).Code)

	tests := []struct {
		path    string
		wantIDs []string
	}{
		{"/v1/dashboard/events", []string{"1", "2", "3", "4", "5", "6"}},
		{"/v1/dashboard/events/upcoming", []string{"1"}},
		{"/v1/dashboard/events/past", []string{}},
		{"/v1/dashboard/events/saved", []string{"3"}},
		{"/v1/dashboard/events/recommended", []string{"1", "2", "3", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, http.MethodGet, tt.path, token)
			require.Equal(t, http.StatusOK, rec.Code)

			var cards []dashboard.EventCard
			unmarshal(t, rec, &cards)
			ids := make([]string, 0, len(cards))
			for _, c := range cards {
				ids = append(ids, c.ID)
				if c.ID == "3" {
					assert.True(t, c.HasReminder)
					assert.True(t, c.IsBookmarked)
				}
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestStats(t *testing.T) {
	token, _ := startSession(t)

	require.Equal(t, http.StatusOK, do(t, http.MethodPost, "/v1/dashboard/events/1/rsvp", token).Code)
	require.Equal(t, http.StatusOK, do(t, http.MethodPost, "/v1/dashboard/events/5/rsvp", token).Code)
	require.Equal(t, http.StatusOK, do(t, http.MethodPost, "/v1/dashboard/events/6/bookmark", token).Code)

	rec := do(t, http.MethodGet, "/v1/dashboard/stats", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"upcoming_rsvps":2,"saved_events":1,"badges_earned":2,"ai_recommendations":4}`, rec.Body.String())
}

func TestSetActivePage(t *testing.T) {
	token, _ := startSession(t)

	tests := []httpTest{
		{
			name:     "missing page",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"page": "this field is required"}),
		},
		{
			name:     "unknown page",
			body:     []byte(`{"page":"admin"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"page": "unknown page"}),
		},
		{
			name:     "valid page",
			body:     []byte(`{"page":" Bookmarks "}`),
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, http.MethodPut, "/v1/dashboard/page", token, tt.body)
			checkCodeAndData(t, tt, rec)
		})
	}

	rec := do(t, http.MethodGet, "/v1/dashboard", token)
	var view struct {
		Page dashboard.Page `json:"page"`
	}
	unmarshal(t, rec, &view)
	assert.Equal(t, dashboard.PageBookmarks, view.Page)
}

func TestToggleSidebar(t *testing.T) {
	token, _ := startSession(t)

	var resp dispatchResp
	rec := do(t, http.MethodPost, "/v1/dashboard/sidebar", token)
	require.Equal(t, http.StatusOK, rec.Code)
	unmarshal(t, rec, &resp)
	assert.False(t, resp.Dashboard.SidebarOpen)
	assert.Empty(t, resp.Notifications)
}

func TestNotificationsDrain(t *testing.T) {
	token, _ := startSession(t)

	// toasts are handed out with the mutation response, so the feed starts out empty
	require.Equal(t, http.StatusOK, do(t, http.MethodPost, "/v1/dashboard/events/4/bookmark", token).Code)

	rec := do(t, http.MethodGet, "/v1/dashboard/notifications", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTokenRefresh(t *testing.T) {
	token, _ := startSession(t)

	rec := do(t, http.MethodPost, "/v1/dashboard/token-refresh", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	unmarshal(t, rec, &resp)
	require.NotEmpty(t, resp.Token)

	// the refreshed token identifies the same session
	rec = do(t, http.MethodGet, "/v1/dashboard", resp.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout(t *testing.T) {
	token, _ := startSession(t)
	before := len(loggedOut)

	rec := do(t, http.MethodDelete, "/v1/dashboard", token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, loggedOut, before+1)
	id := loggedOut[before]

	tt := httpTest{
		wantCode: http.StatusUnauthorized,
		wantData: marchallObj(t, httpErr{Error: "session not found"}),
	}
	checkCodeAndData(t, tt, do(t, http.MethodGet, "/v1/dashboard", token))

	_, err := repo.GetSession(context.Background(), id)
	assert.Equal(t, dashboard.ErrSessionNotFound, err)
}

func TestSessionsAreIsolated(t *testing.T) {
	token1, _ := startSession(t)
	token2, _ := startSession(t)

	require.Equal(t, http.StatusOK, do(t, http.MethodPost, "/v1/dashboard/events/1/rsvp", token1).Code)

	var view1, view2 struct {
		Header struct {
			Points int `json:"points"`
		} `json:"header"`
	}
	unmarshal(t, do(t, http.MethodGet, "/v1/dashboard", token1), &view1)
	unmarshal(t, do(t, http.MethodGet, "/v1/dashboard", token2), &view2)
	assert.Equal(t, 300, view1.Header.Points)
	assert.Equal(t, 250, view2.Header.Points)
}

func TestIdleSessionEviction(t *testing.T) {
	token, _ := startSession(t)
	require.Equal(t, http.StatusOK, do(t, http.MethodPost, "/v1/dashboard/events/1/bookmark", token).Code)
	before := len(loggedOut)

	// every session is idle an hour from now
	evicted, err := svc.EvictIdle(context.Background(), time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, evicted)
	assert.Len(t, loggedOut, before+len(evicted))

	tt := httpTest{
		wantCode: http.StatusUnauthorized,
		wantData: marchallObj(t, httpErr{Error: "session not found"}),
	}
	checkCodeAndData(t, tt, do(t, http.MethodGet, "/v1/dashboard", token))
}
