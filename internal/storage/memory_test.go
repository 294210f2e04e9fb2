package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
)

// newTestStore создает хранилище с фиксированными часами
func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := New()
	s.now = func() time.Time { return current }
	return s, &current
}

func testIncident(externalID string) models.Incident {
	return models.Incident{
		IncidentID:  externalID,
		Title:       "Vehicle Collision",
		Severity:    models.SeverityHigh,
		Source:      "Traffic Camera 42",
		Location:    "Main St & 5th Ave",
		Coordinates: "34.0522,-118.2437",
	}
}

func TestCreateIncident_AssignsMonotonicIDs(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.CreateIncident(testIncident("INC-1"))
	require.NoError(t, err)
	second, err := s.CreateIncident(testIncident("INC-2"))
	require.NoError(t, err)
	third, err := s.CreateIncident(testIncident("INC-3"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)
}

func TestCreateIncident_AppliesDefaults(t *testing.T) {
	s, clock := newTestStore(t)

	created, err := s.CreateIncident(testIncident("INC-1"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusActive, created.Status)
	assert.Equal(t, *clock, created.DetectedAt)
	assert.Equal(t, *clock, created.CreatedAt)
}

func TestCreateIncident_KeepsProvidedDetectedAt(t *testing.T) {
	s, clock := newTestStore(t)

	detectedAt := clock.Add(-10 * time.Minute)
	inc := testIncident("INC-1")
	inc.DetectedAt = detectedAt
	inc.Status = models.StatusResolved

	created, err := s.CreateIncident(inc)
	require.NoError(t, err)

	assert.Equal(t, detectedAt, created.DetectedAt)
	assert.Equal(t, models.StatusResolved, created.Status)
	assert.Equal(t, *clock, created.CreatedAt)
}

func TestCreateIncident_RejectsDuplicateExternalID(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreateIncident(testIncident("INC-1"))
	require.NoError(t, err)

	_, err = s.CreateIncident(testIncident("INC-1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateIncidentID)

	// Неудачная попытка не должна занимать id
	next, err := s.CreateIncident(testIncident("INC-2"))
	require.NoError(t, err)
	assert.Equal(t, 2, next.ID)
}

func TestGetIncident_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.GetIncident(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateIncidentStatus_AllTransitions(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.CreateIncident(testIncident("INC-1"))
	require.NoError(t, err)

	for _, status := range []string{
		models.StatusDispatched,
		models.StatusResolved,
		models.StatusCanceled,
		models.StatusActive,
	} {
		updated, err := s.UpdateIncidentStatus(created.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)

		got, err := s.GetIncident(created.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}
}

func TestUpdateIncidentStatus_InvalidStatus(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.CreateIncident(testIncident("INC-1"))
	require.NoError(t, err)

	_, err = s.UpdateIncidentStatus(created.ID, "escalated")
	require.Error(t, err)

	got, err := s.GetIncident(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
}

func TestUpdateIncidentStatus_UnknownID(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreateIncident(testIncident("INC-1"))
	require.NoError(t, err)

	_, err = s.UpdateIncidentStatus(99, models.StatusResolved)
	assert.ErrorIs(t, err, ErrNotFound)

	// Хранилище не изменилось
	assert.Len(t, s.ListIncidents(), 1)
}

func TestListActiveIncidents_FiltersByStatus(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.CreateIncident(testIncident("INC-1"))
	require.NoError(t, err)
	second, err := s.CreateIncident(testIncident("INC-2"))
	require.NoError(t, err)
	third, err := s.CreateIncident(testIncident("INC-3"))
	require.NoError(t, err)

	_, err = s.UpdateIncidentStatus(second.ID, models.StatusDispatched)
	require.NoError(t, err)

	active := s.ListActiveIncidents()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, third.ID, active[1].ID)
}

func TestListIncidents_ReturnsCopies(t *testing.T) {
	s, _ := newTestStore(t)

	p := 97.5
	inc := testIncident("INC-1")
	inc.Probability = &p

	created, err := s.CreateIncident(inc)
	require.NoError(t, err)

	list := s.ListIncidents()
	require.Len(t, list, 1)
	list[0].Title = "Tampered"
	*list[0].Probability = 1.0

	got, err := s.GetIncident(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vehicle Collision", got.Title)
	assert.Equal(t, 97.5, *got.Probability)
}

func TestFindIncidentByExternalID(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.CreateIncident(testIncident("INC-1"))
	require.NoError(t, err)

	got, err := s.FindIncidentByExternalID("INC-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.FindIncidentByExternalID("INC-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindUserByUsername(t *testing.T) {
	s, _ := newTestStore(t)

	created := s.CreateUser(models.User{Username: "admin", Password: "admin123", IsAdmin: true})
	assert.Equal(t, 1, created.ID)

	got, err := s.FindUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.FindUserByUsername("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListContacts_PreservesCreationOrder(t *testing.T) {
	s, _ := newTestStore(t)

	s.CreateContact(models.EmergencyContact{Name: "Fire Department"})
	s.CreateContact(models.EmergencyContact{Name: "Police"})
	s.CreateContact(models.EmergencyContact{Name: "Ambulance"})

	contacts := s.ListContacts()
	require.Len(t, contacts, 3)
	assert.Equal(t, "Fire Department", contacts[0].Name)
	assert.Equal(t, "Police", contacts[1].Name)
	assert.Equal(t, "Ambulance", contacts[2].Name)
}

func TestUpdateSystemStatus_MergesAndRefreshesLastUpdated(t *testing.T) {
	s, clock := newTestStore(t)

	v := 8
	created := s.CreateSystemStatus(models.SystemStatus{
		Name:       "Cameras Online",
		Status:     "operational",
		Value:      &v,
		Percentage: 100,
	})
	assert.Equal(t, *clock, created.LastUpdated)

	// Сдвигаем часы и применяем частичное обновление
	*clock = clock.Add(5 * time.Minute)
	newStatus := "degraded"
	newPercentage := 75
	updated, err := s.UpdateSystemStatus(created.ID, models.SystemStatusUpdate{
		Status:     &newStatus,
		Percentage: &newPercentage,
	})
	require.NoError(t, err)

	assert.Equal(t, "Cameras Online", updated.Name)
	assert.Equal(t, "degraded", updated.Status)
	assert.Equal(t, 8, *updated.Value)
	assert.Equal(t, 75, updated.Percentage)
	assert.Equal(t, *clock, updated.LastUpdated)
}

func TestUpdateSystemStatus_UnknownID(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.UpdateSystemStatus(7, models.SystemStatusUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}
