package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/api"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/session"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core/state"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/storage/credstore"
	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/tests"
)

func newTestApp(t *testing.T, handler http.Handler) (*App, *credstore.MemStore) {
	t.Helper()
	if handler == nil {
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &core.Config{AppName: "Attentiveness", APIURL: srv.URL, RequestTimeout: 5 * time.Second}
	log := testutil.NopLogger{T: t}
	store := credstore.NewMemStore()
	gw := api.NewClient(conf, store, log)
	sess := session.NewService(gw, store, log)
	st := state.NewStore()
	return NewApp(conf, log, gw, sess, st), store
}

func authenticate(t *testing.T, store *credstore.MemStore) session.Teacher {
	t.Helper()
	tchr := session.Teacher{ID: "1", Name: "Grace", TeacherID: "gh001", Department: "CS"}
	require.NoError(t, store.Save(testutil.MakeToken(t, time.Now().Add(time.Hour)), tchr))
	return tchr
}

func TestGuardBlocksProtectedCommandsWhenAnonymous(t *testing.T) {
	protected := [][]string{
		{"whoami"},
		{"classes", "list"},
		{"students", "list", "--class", "1"},
		{"report", "show", "--class", "1"},
	}
	for _, args := range protected {
		t.Run(args[0], func(t *testing.T) {
			app, _ := newTestApp(t, nil)
			err := app.Execute(args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not logged in")
		})
	}
}

func TestGuardAllowsPublicCommandsWhenAnonymous(t *testing.T) {
	app, _ := newTestApp(t, nil)
	assert.NoError(t, app.Execute([]string{"health"}))
	assert.NoError(t, app.Execute([]string{"logout"}))
}

func TestGuardAllowsProtectedCommandsWhenAuthenticated(t *testing.T) {
	app, store := newTestApp(t, nil)
	authenticate(t, store)

	assert.NoError(t, app.Execute([]string{"whoami"}))
}

func TestGuardBlocksExpiredSession(t *testing.T) {
	app, store := newTestApp(t, nil)
	tchr := session.Teacher{ID: "1", TeacherID: "gh001"}
	require.NoError(t, store.Save(testutil.MakeToken(t, time.Now().Add(-time.Hour)), tchr))

	err := app.Execute([]string{"whoami"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestLoginCommand(t *testing.T) {
	tchr := session.Teacher{ID: "1", Name: "Grace", TeacherID: "gh001", Department: "CS"}
	app, _ := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var body session.Login
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "gh001", body.TeacherID)
		require.Equal(t, "s3cret", body.Password)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": testutil.MakeToken(t, time.Now().Add(time.Hour)),
			"token_type":   "bearer",
			"teacher":      tchr,
		})
	}))

	prev := readPasswordFunc
	readPasswordFunc = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPasswordFunc = prev }()

	require.NoError(t, app.Execute([]string{"login", "gh001"}))
	assert.True(t, app.Session.Authenticated())

	got, ok := app.Session.Current()
	require.True(t, ok)
	assert.Equal(t, tchr, got)
}

func TestLogoutCommandResetsState(t *testing.T) {
	app, store := newTestApp(t, nil)
	authenticate(t, store)
	app.State.ReplaceClassList([]state.Class{{ID: "1", Subject: "Math"}})

	require.NoError(t, app.Execute([]string{"logout"}))

	assert.False(t, app.Session.Authenticated())
	assert.Empty(t, app.State.Classes())
	_, _, ok, err := store.Read()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClassesListPopulatesStore(t *testing.T) {
	classes := []state.Class{
		{ID: "1", Subject: "Math", Semester: 3, ClassName: "A"},
		{ID: "2", Subject: "Physics", Semester: 3, ClassName: "B"},
	}
	app, store := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/classes", r.URL.Path)
		_ = json.NewEncoder(w).Encode(classes)
	}))
	authenticate(t, store)

	require.NoError(t, app.Execute([]string{"classes", "list"}))
	assert.Equal(t, classes, app.State.Classes())
	assert.False(t, app.State.Loading(state.ResourceClasses))
}
