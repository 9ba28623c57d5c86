package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindpulse/internal/assessment"
	"mindpulse/internal/memstore"
	"mindpulse/internal/model"
	"mindpulse/internal/service"
	"mindpulse/internal/transport/rest/handler"
	"mindpulse/internal/transport/ws"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	auth := service.NewAuthService("test-secret", time.Hour)
	svc := service.NewCheckInService(assessment.DefaultBank(), memstore.NewCheckInRepo(), memstore.NewSessionCache(), memstore.NewTrendCache(), auth)
	hub := ws.NewHub()
	svc.SetAnalytics(memstore.NewAnalyticsCache())
	svc.SetBroadcaster(hub)
	return NewRouter(&Container{AuthService: auth, CheckInService: svc, WSHub: hub})
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func start(t *testing.T, h http.Handler, token string) model.StartCheckInResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/v1/checkins", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp model.StartCheckInResponse
	decode(t, rec, &resp)
	return resp
}

func answer(t *testing.T, h http.Handler, s model.StartCheckInResponse, optionID string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, h, http.MethodPost, "/v1/checkins/"+s.CheckInID+"/answers", s.Token, handler.AnswerRequest{OptionID: optionID})
}

func TestRouter_Health(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_CheckInFlow(t *testing.T) {
	h := newTestRouter(t)
	s := start(t, h, "")
	require.NotNil(t, s.View)
	assert.Equal(t, "q_base_1", s.View.Question.ID)

	for _, o := range []string{"neutral", "2", "2", "2", "no"} {
		rec := answer(t, h, s, o)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec := do(t, h, http.MethodGet, "/v1/checkins/"+s.CheckInID+"/result", s.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = answer(t, h, s, "people")
	require.Equal(t, http.StatusOK, rec.Code)
	var view model.CheckInView
	decode(t, rec, &view)
	assert.True(t, view.Done)
	assert.Len(t, view.Recommendations, 2)

	rec = do(t, h, http.MethodGet, "/v1/checkins/"+s.CheckInID+"/result", s.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var checkIn model.CheckIn
	decode(t, rec, &checkIn)
	assert.Equal(t, s.UserID, checkIn.UserID)

	rec = answer(t, h, s, "people")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/v1/checkins/"+s.CheckInID+"/restart", s.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &view)
	assert.Equal(t, model.PhaseBase, view.Phase)
}

func TestRouter_AnswerValidation(t *testing.T) {
	h := newTestRouter(t)
	s := start(t, h, "")

	rec := answer(t, h, s, "not-an-option")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = answer(t, h, s, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/checkins/"+s.CheckInID, s.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view model.CheckInView
	decode(t, rec, &view)
	assert.Equal(t, "q_base_1", view.Question.ID)
}

func TestRouter_TokenScope(t *testing.T) {
	h := newTestRouter(t)
	alice := start(t, h, "")
	bob := start(t, h, "")

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"no token", "/v1/checkins/" + alice.CheckInID, "", http.StatusUnauthorized},
		{"bad token", "/v1/checkins/" + alice.CheckInID, "junk", http.StatusUnauthorized},
		{"other check-in", "/v1/checkins/" + alice.CheckInID, bob.Token, http.StatusForbidden},
		{"other user history", "/v1/users/" + alice.UserID + "/checkins", bob.Token, http.StatusForbidden},
		{"own history", "/v1/users/" + alice.UserID + "/checkins", alice.Token, http.StatusOK},
		{"own trend", "/v1/users/" + alice.UserID + "/trend", alice.Token, http.StatusOK},
		{"bad limit", "/v1/users/" + alice.UserID + "/trend?limit=x", alice.Token, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.path, tt.token, nil)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_ReturningUserKeepsIdentity(t *testing.T) {
	h := newTestRouter(t)
	first := start(t, h, "")
	for _, o := range []string{"neutral", "2", "2", "2", "no", "people"} {
		require.Equal(t, http.StatusOK, answer(t, h, first, o).Code)
	}

	second := start(t, h, first.Token)
	assert.Equal(t, first.UserID, second.UserID)
	assert.NotEqual(t, first.CheckInID, second.CheckInID)

	rec := do(t, h, http.MethodGet, "/v1/users/"+first.UserID+"/checkins", second.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		CheckIns []model.CheckIn `json:"checkIns"`
	}
	decode(t, rec, &body)
	assert.Len(t, body.CheckIns, 1)

	rec = do(t, h, http.MethodPost, "/v1/checkins", "junk", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodOptions, "/v1/checkins/c_x/answers", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Stats(t *testing.T) {
	h := newTestRouter(t)
	s := start(t, h, "")
	for _, o := range []string{"neutral", "2", "2", "2", "no", "people"} {
		require.Equal(t, http.StatusOK, answer(t, h, s, o).Code)
	}

	rec := do(t, h, http.MethodGet, "/v1/stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats model.CheckInStats
	decode(t, rec, &stats)
	assert.Equal(t, 1, stats.Completed)

	rec = do(t, h, http.MethodGet, "/v1/stats/questions/q_light_gratitude", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var q model.QuestionStats
	decode(t, rec, &q)
	assert.Equal(t, map[string]int{"people": 1}, q.OptionCounts)

	rec = do(t, h, http.MethodGet, "/v1/stats/questions/q_nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
