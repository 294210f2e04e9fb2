package feed

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/incidentwatch/emergency_monitoring_system/internal/alert"
	"github.com/incidentwatch/emergency_monitoring_system/internal/config"
	dispatch_mocks "github.com/incidentwatch/emergency_monitoring_system/internal/dispatch/mocks"
	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
	"github.com/incidentwatch/emergency_monitoring_system/internal/service"
	"github.com/incidentwatch/emergency_monitoring_system/internal/storage"
)

// recordingBroadcaster записывает рассылаемые события вместо отправки в хаб
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []alert.Event
}

func (r *recordingBroadcaster) Broadcast(event alert.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingBroadcaster) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]string, len(r.events))
	for i, e := range r.events {
		res[i] = e.Type
	}
	return res
}

type listenerFixture struct {
	listener *Listener
	store    *storage.Store
	alerts   *alert.Manager
	hub      *recordingBroadcaster
	clock    *time.Time
}

// newTestListener собирает слушателя поверх реального хранилища и сервиса,
// с фиксированными часами, общими для слушателя и охлаждения
func newTestListener(t *testing.T) *listenerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	publisherMock := dispatch_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }

	store := storage.New()
	cfg := &config.Config{ReportsDir: t.TempDir()}
	incidents := service.NewIncidentService(store, publisherMock, logger, cfg)

	hub := &recordingBroadcaster{}
	alerts := alert.NewManager(hub, logger)

	cooldown := NewCooldown(5 * time.Second)
	cooldown.now = clock

	listener := NewListener("ws://feed.invalid/ws/incident", cooldown, incidents, alerts, logger)
	listener.now = clock

	return &listenerFixture{
		listener: listener,
		store:    store,
		alerts:   alerts,
		hub:      hub,
		clock:    &current,
	}
}

func TestHandleMessage_CreatesIncidentAndRaisesAlert(t *testing.T) {
	f := newTestListener(t)
	ctx := context.Background()

	payload := []byte(`{
		"incident_id": "ESP32-7001",
		"incident_type": "Vehicle Collision",
		"acceleration": 7.5,
		"latitude": "34.0522",
		"longitude": "-118.2437",
		"address": "Main St & 5th Ave"
	}`)

	f.listener.handleMessage(ctx, payload)

	incidents := f.store.ListIncidents()
	require.Len(t, incidents, 1)

	inc := incidents[0]
	assert.Equal(t, "ESP32-7001", inc.IncidentID)
	assert.Equal(t, "Vehicle Collision", inc.Title)
	assert.Equal(t, models.SeverityHigh, inc.Severity)
	assert.Equal(t, "ESP32 Device", inc.Source)
	assert.Equal(t, "Main St & 5th Ave", inc.Location)
	assert.Equal(t, "34.0522,-118.2437", inc.Coordinates)
	assert.Equal(t, models.StatusActive, inc.Status)
	require.NotNil(t, inc.Probability)
	assert.InDelta(t, 75.0, *inc.Probability, 0.001)

	// Алерт и модальное окно выставлены принятым инцидентом
	latest, ok := f.alerts.LatestAlert()
	require.True(t, ok)
	assert.Equal(t, inc.ID, latest.ID)

	modal, ok := f.alerts.Current()
	require.True(t, ok)
	assert.Equal(t, inc.ID, modal.ID)

	assert.Equal(t, []string{
		alert.EventIncidentAlert,
		alert.EventModalOpen,
		alert.EventMapFocus,
		alert.EventMapMarker,
	}, f.hub.types())
}

func TestHandleMessage_ProbabilityCapped(t *testing.T) {
	f := newTestListener(t)

	// Ускорение 15g дало бы 150%, формула ограничивает значение 99.9
	f.listener.handleMessage(context.Background(), []byte(`{
		"incident_id": "ESP32-7002",
		"acceleration": 15.0,
		"latitude": "34.05",
		"longitude": "-118.24"
	}`))

	incidents := f.store.ListIncidents()
	require.Len(t, incidents, 1)
	require.NotNil(t, incidents[0].Probability)
	assert.InDelta(t, 99.9, *incidents[0].Probability, 0.001)
	assert.Equal(t, "Shock Detected", incidents[0].Title)
}

func TestHandleMessage_MalformedPayloadDropped(t *testing.T) {
	f := newTestListener(t)

	f.listener.handleMessage(context.Background(), []byte(`{not json`))

	assert.Empty(t, f.store.ListIncidents())
	assert.Empty(t, f.hub.types())
	_, ok := f.alerts.LatestAlert()
	assert.False(t, ok)
}

func TestHandleMessage_NonNumericCoordinatesDropped(t *testing.T) {
	f := newTestListener(t)

	f.listener.handleMessage(context.Background(), []byte(`{
		"incident_id": "ESP32-7003",
		"acceleration": 5.0,
		"latitude": "unknown",
		"longitude": "-118.24"
	}`))

	assert.Empty(t, f.store.ListIncidents())
	assert.Empty(t, f.hub.types())
}

func TestHandleMessage_CooldownSuppressesRepeat(t *testing.T) {
	f := newTestListener(t)
	ctx := context.Background()

	f.listener.handleMessage(ctx, []byte(`{
		"incident_id": "ESP32-7004",
		"acceleration": 6.0,
		"latitude": "34.05",
		"longitude": "-118.24"
	}`))
	require.Len(t, f.store.ListIncidents(), 1)

	// Повтор через секунду внутри пятисекундного окна отбрасывается
	*f.clock = f.clock.Add(1 * time.Second)
	f.listener.handleMessage(ctx, []byte(`{
		"incident_id": "ESP32-7005",
		"acceleration": 9.0,
		"latitude": "34.06",
		"longitude": "-118.25"
	}`))

	assert.Len(t, f.store.ListIncidents(), 1)
	latest, ok := f.alerts.LatestAlert()
	require.True(t, ok)
	assert.Equal(t, "ESP32-7004", latest.IncidentID)

	// После истечения окна события снова принимаются
	*f.clock = f.clock.Add(5 * time.Second)
	f.listener.handleMessage(ctx, []byte(`{
		"incident_id": "ESP32-7006",
		"acceleration": 9.0,
		"latitude": "34.06",
		"longitude": "-118.25"
	}`))

	assert.Len(t, f.store.ListIncidents(), 2)
	latest, ok = f.alerts.LatestAlert()
	require.True(t, ok)
	assert.Equal(t, "ESP32-7006", latest.IncidentID)
}

func TestHandleMessage_DuplicateExternalIDDropped(t *testing.T) {
	f := newTestListener(t)
	ctx := context.Background()

	payload := []byte(`{
		"incident_id": "ESP32-7007",
		"acceleration": 6.0,
		"latitude": "34.05",
		"longitude": "-118.24"
	}`)

	f.listener.handleMessage(ctx, payload)
	require.Len(t, f.store.ListIncidents(), 1)

	// Окно охлаждения прошло, но внешний id уже занят
	*f.clock = f.clock.Add(10 * time.Second)
	f.listener.handleMessage(ctx, payload)

	assert.Len(t, f.store.ListIncidents(), 1)
}
