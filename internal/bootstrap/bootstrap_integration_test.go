package bootstrap_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseleads/internal/app/models/dto"
	"github.com/yigit/courseleads/internal/bootstrap"
	"github.com/yigit/courseleads/internal/config"
	"github.com/yigit/courseleads/internal/testdb"
)

type apiEnv struct {
	t      *testing.T
	router http.Handler
	pg     *testdb.PostgresContainer
}

func setupAPI(t *testing.T) *apiEnv {
	t.Helper()

	pg := testdb.SetupSharedPostgres(t)
	testdb.CleanupTables(t, pg.Pool())

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.Port = "3000"

	deps := bootstrap.BuildDependencies(pg.DB)
	return &apiEnv{t: t, router: bootstrap.SetupRouter(cfg, deps, zerolog.Nop()), pg: pg}
}

func (e *apiEnv) do(method, path, body string) *httptest.ResponseRecorder {
	e.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *apiEnv) message(w *httptest.ResponseRecorder) string {
	e.t.Helper()
	var body dto.MessageResponse
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func (e *apiEnv) leads(query string) []dto.LeadResponse {
	e.t.Helper()
	w := e.do(http.MethodGet, "/leads"+query, "")
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())
	var leads []dto.LeadResponse
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &leads))
	return leads
}

func TestAPI_CourseLifecycle(t *testing.T) {
	api := setupAPI(t)

	w := api.do(http.MethodPost, "/courses", `{"instructor_id":1,"name":"Intro","max_seats":10,"start_date":"2025-01-01"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Course created successfully", api.message(w))

	w = api.do(http.MethodPut, "/courses/1", `{"name":"Intro 2","max_seats":20,"start_date":"2025-02-01"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Course details updated successfully", api.message(w))

	// Zero-padded id names the same course, as it does on registration
	w = api.do(http.MethodPut, "/courses/01", `{"name":"Intro 3","max_seats":30,"start_date":"1/2/2025"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var name string
	var seats int64
	err := api.pg.Pool().QueryRow(context.Background(), "SELECT name, max_seats FROM courses WHERE course_id = 1").Scan(&name, &seats)
	require.NoError(t, err)
	assert.Equal(t, "Intro 3", name)
	assert.Equal(t, int64(30), seats)

	// No such course: still a success
	w = api.do(http.MethodPut, "/courses/999", `{"name":"Ghost","max_seats":1,"start_date":"2025-02-01"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/courses/abc", `{"name":"Ghost","max_seats":1,"start_date":"2025-02-01"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPost, "/courses", `{"instructor_id":"abc","name":"Intro","max_seats":10,"start_date":"2025-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid input data", api.message(w))
}

func TestAPI_LeadsAndComments(t *testing.T) {
	api := setupAPI(t)

	register := func(courseID, name, email string) {
		t.Helper()
		body := `{"name":"` + name + `","email":"` + email + `","phone":"555","linkedin_profile":"in/x"}`
		w := api.do(http.MethodPost, "/courses/"+courseID+"/register", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "Registered for the course successfully", api.message(w))
	}

	// Course 5 does not exist; the lead is stored anyway
	register("5", "John Smith", "john@example.com")
	register("5", "Joanna Jones", "joanna@corp.io")
	register("6", "Mary Major", "mary@example.com")

	assert.Empty(t, api.leads("?name=nobody"))
	assert.Len(t, api.leads(""), 3)
	assert.Len(t, api.leads("?name=JO"), 2)
	assert.Len(t, api.leads("?name=jo&email=example"), 1)
	assert.Len(t, api.leads("?name=%25"), 0)

	w := api.do(http.MethodPost, "/courses/5/register", `{"name":"A","email":"  ","phone":"1","linkedin_profile":"p"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name, email, phone, and linkedin_profile are required fields", api.message(w))

	w = api.do(http.MethodPost, "/courses/abc/register", `{"name":"A","email":"b","phone":"1","linkedin_profile":"p"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", api.message(w))

	w = api.do(http.MethodPut, "/leads/1", `{"status":"Accepted"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lead status updated successfully", api.message(w))

	w = api.do(http.MethodPut, "/leads/+1", `{"status":"Rejected"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rejected", api.leads("?name=John")[0].Status)

	w = api.do(http.MethodPut, "/leads/01", `{"status":"Accepted"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/leads/1", `{"status":"accepted"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	leads := api.leads("?name=John")
	require.Len(t, leads, 1)
	assert.Equal(t, "Accepted", leads[0].Status)
	assert.Equal(t, int64(5), leads[0].CourseID)

	w = api.do(http.MethodPost, "/comments", `{"lead_id":1,"instructor_id":1,"comment":"Strong candidate"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Comment added successfully", api.message(w))

	w = api.do(http.MethodPost, "/comments", `{"lead_id":1,"instructor_id":1,"comment":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_Probes(t *testing.T) {
	api := setupAPI(t)

	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/ready", "").Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/swagger/doc.json", "").Code)
}
