package realtime

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentwatch/emergency_monitoring_system/internal/alert"
	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
)

// newTestHub поднимает хаб и тестовый websocket-сервер, регистрирующий
// входящие соединения в хабе
func newTestHub(t *testing.T) (*Hub, string) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	hub := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.RegisterClient(conn)
	}))
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestHub_BroadcastReachesSubscriber(t *testing.T) {
	hub, url := newTestHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(alert.Event{
		Type:     alert.EventIncidentAlert,
		Incident: &models.Incident{ID: 1, IncidentID: "INC-TEST-1"},
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev alert.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, alert.EventIncidentAlert, ev.Type)
	require.NotNil(t, ev.Incident)
	assert.Equal(t, "INC-TEST-1", ev.Incident.IncidentID)
}

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	hub, url := newTestHub(t)

	first, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer first.Close()
	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer second.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(alert.Event{Type: alert.EventModalClose})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var ev alert.Event
		require.NoError(t, json.Unmarshal(data, &ev))
		assert.Equal(t, alert.EventModalClose, ev.Type)
	}
}

func TestHub_DisconnectUnregistersClient(t *testing.T) {
	hub, url := newTestHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}
