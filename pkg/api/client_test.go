package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/gorev/pkg/debounce"
	"tableflip.dev/gorev/pkg/msg"
	"tableflip.dev/gorev/pkg/session"
	"tableflip.dev/gorev/pkg/task"
)

type fakeKeeper struct {
	session session.Session
	cleared bool
}

func (f *fakeKeeper) Current() session.Session { return f.session }
func (f *fakeKeeper) Token() string            { return f.session.Token }
func (f *fakeKeeper) Save(s session.Session) error {
	f.session = s
	return nil
}
func (f *fakeKeeper) Clear() error {
	f.session = session.Session{}
	f.cleared = true
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeKeeper, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	keeper := &fakeKeeper{session: session.Session{Token: "tok-123"}}
	c := New(Options{
		BaseURL:  srv.URL,
		Sessions: keeper,
	})
	return c, keeper, srv
}

func TestListTasksSendsBearerAndQuery(t *testing.T) {
	var gotAuth string
	var gotQuery map[string][]string

	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"tasks":      []interface{}{},
				"totalCount": 0, "page": 2, "pageSize": 25, "totalPages": 0,
				"totalTasks": 0, "completed": 0, "pending": 0, "progress": 0,
			},
		})
	})

	end, err := task.ParseDate("2026-09-15")
	require.NoError(t, err)

	_, err = c.ListTasks(context.Background(), ListParams{
		Page:       2,
		PageSize:   25,
		Status:     task.StatusPending,
		SearchTerm: "süt al",
		EndDate:    end,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"25"}, gotQuery["pageSize"])
	assert.Equal(t, []string{"2"}, gotQuery["statusFilter"])
	assert.Equal(t, []string{"süt al"}, gotQuery["searchTerm"])
	assert.Equal(t, []string{"2026-09-15"}, gotQuery["dueDate"])
}

func TestListTasksOmitsZeroFilters(t *testing.T) {
	var gotQuery map[string][]string
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{}})
	})

	_, err := c.ListTasks(context.Background(), ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "page")
	assert.Contains(t, gotQuery, "pageSize")
	assert.NotContains(t, gotQuery, "statusFilter")
	assert.NotContains(t, gotQuery, "searchTerm")
	assert.NotContains(t, gotQuery, "dueDate")
}

func TestUnauthorizedTearsDownSession(t *testing.T) {
	var hookFired bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"messages": "Oturum süresi doldu"})
	}))
	t.Cleanup(srv.Close)

	keeper := &fakeKeeper{session: session.Session{Token: "stale"}}
	c := New(Options{
		BaseURL:        srv.URL,
		Sessions:       keeper,
		OnUnauthorized: func() { hookFired = true },
	})

	err := c.DeleteTask(context.Background(), 7)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Oturum süresi doldu", apiErr.Message)
	assert.True(t, keeper.cleared, "session must be cleared on 401")
	assert.True(t, hookFired, "unauthorized hook must fire")
	assert.Empty(t, keeper.Token())
}

func TestUnauthorizedFallbackMessage(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := c.DeleteTask(context.Background(), 7)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, msg.NewLocalizer(msg.LanguageTr).T(msg.SessionExpired), apiErr.Message)
}

func TestRateLimitRaisesNotice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"messages":   "Çok fazla istek",
			"retryAfter": 30,
		})
	}))
	t.Cleanup(srv.Close)

	notices := NewNoticeCenter(debounce.NewManual())
	keeper := &fakeKeeper{}
	c := New(Options{BaseURL: srv.URL, Sessions: keeper, Notices: notices})

	_, err := c.ListTasks(context.Background(), ListParams{Page: 1, PageSize: 10})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 30, apiErr.RetryAfter)

	current := notices.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Çok fazla istek", current.Message)
	assert.Equal(t, 30, current.RetryAfter)
	assert.False(t, keeper.cleared, "429 must not clear the session")
}

func TestRateLimitDefaultsRetryAfter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	notices := NewNoticeCenter(debounce.NewManual())
	c := New(Options{BaseURL: srv.URL, Notices: notices})

	_, err := c.ListTasks(context.Background(), ListParams{Page: 1, PageSize: 10})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 60, apiErr.RetryAfter)

	current := notices.Current()
	require.NotNil(t, current)
	assert.Equal(t, 60, current.RetryAfter)
	assert.Equal(t, msg.NewLocalizer(msg.LanguageTr).T(msg.RateLimited), current.Message)
}

func TestUpdateTaskDueDateSendsExplicitNull(t *testing.T) {
	var body string
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.UpdateTaskDueDate(context.Background(), 7, nil))
	assert.JSONEq(t, `{"dueDate": null}`, body)

	d, err := task.ParseDate("2026-09-15")
	require.NoError(t, err)
	require.NoError(t, c.UpdateTaskDueDate(context.Background(), 7, d))
	assert.JSONEq(t, `{"dueDate": "2026-09-15"}`, body)
}

func TestCreateTaskOmitsMissingDueDate(t *testing.T) {
	var body string
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": 41})
	})

	id, err := c.CreateTask(context.Background(), CreateTaskRequest{Title: "Süt al"})
	require.NoError(t, err)
	assert.Equal(t, int64(41), id)
	assert.JSONEq(t, `{"title": "Süt al"}`, body)
}

func TestLoginReturnsSession(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"id": 3, "email": "ayse@example.com", "username": "ayse", "token": "fresh",
			},
		})
	})

	s, err := c.Login(context.Background(), "ayse", "Gizli1si!")
	require.NoError(t, err)
	assert.Equal(t, "fresh", s.Token)
	require.NotNil(t, s.User)
	assert.Equal(t, int64(3), s.User.ID)
	assert.Equal(t, "ayse", s.User.Username)
	assert.True(t, s.IsAuthenticated())
}

func TestErrorMessageFallback(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.DeleteTask(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "fallback", Message(err, "fallback"))

	c2, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"messages": "Görev bulunamadı"})
	})
	err = c2.DeleteTask(context.Background(), 7)
	assert.Equal(t, "Görev bulunamadı", Message(err, "fallback"))
}
