package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindpulse/internal/assessment"
	"mindpulse/internal/memstore"
	"mindpulse/internal/model"
	"mindpulse/internal/service"
)

func newTestServer(t *testing.T) (*httptest.Server, *service.CheckInService, *service.AuthService) {
	t.Helper()
	hub := NewHub()
	auth := service.NewAuthService("test-secret", time.Hour)
	svc := service.NewCheckInService(assessment.DefaultBank(), memstore.NewCheckInRepo(), memstore.NewSessionCache(), memstore.NewTrendCache(), auth)
	svc.SetBroadcaster(hub)

	r := mux.NewRouter()
	r.HandleFunc("/v1/ws/checkins/{id}", NewHandler(hub, auth, svc).CheckInWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, svc, auth
}

func wsURL(srv *httptest.Server, id, token string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/checkins/" + id + "?token=" + token
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestCheckInWS_StreamsEvents(t *testing.T) {
	srv, svc, _ := newTestServer(t)
	ctx := context.Background()

	start, err := svc.Start(ctx, "u_alice")
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, start.CheckInID, start.Token), nil)
	require.NoError(t, err)
	defer conn.Close()

	msg := readMessage(t, conn)
	require.Equal(t, MsgSnapshot, msg.Type)
	var view model.CheckInView
	require.NoError(t, json.Unmarshal(msg.Payload, &view))
	assert.Equal(t, "q_base_1", view.Question.ID)

	// The snapshot is only written after the connection is registered
	_, err = svc.Answer(ctx, start.CheckInID, "neutral")
	require.NoError(t, err)
	msg = readMessage(t, conn)
	assert.Equal(t, MsgProgress, msg.Type)
	require.NoError(t, json.Unmarshal(msg.Payload, &view))
	assert.Equal(t, "q_base_2", view.Question.ID)
}

func TestCheckInWS_RejectsBadTokens(t *testing.T) {
	srv, svc, auth := newTestServer(t)

	start, err := svc.Start(context.Background(), "u_alice")
	require.NoError(t, err)
	other, err := auth.GenerateCheckInToken("c_other", "u_alice")
	require.NoError(t, err)

	tests := []struct {
		name   string
		id     string
		token  string
		status int
	}{
		{"missing token", start.CheckInID, "", http.StatusUnauthorized},
		{"invalid token", start.CheckInID, "junk", http.StatusUnauthorized},
		{"token for another check-in", start.CheckInID, other, http.StatusForbidden},
		{"unknown check-in", "c_other", other, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, tt.id, tt.token), nil)
			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
