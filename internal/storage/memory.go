package storage

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
)

var (
	// ErrNotFound возвращается, когда сущности с запрошенным id нет в хранилище
	ErrNotFound = errors.New("not found")
	// ErrDuplicateIncidentID возвращается при попытке создать инцидент с уже занятым внешним id
	ErrDuplicateIncidentID = errors.New("incident id already exists")
)

// Store - авторитетное in-memory хранилище всех сущностей дашборда.
// Для каждого типа сущности ведётся своя map и монотонный счётчик id,
// начинающийся с 1. Id никогда не переиспользуются. Все операции чтения
// возвращают копии, чтобы вызывающая сторона не могла изменить состояние
// хранилища в обход операций обновления.
type Store struct {
	mu sync.RWMutex

	users     map[int]models.User
	contacts  map[int]models.EmergencyContact
	incidents map[int]models.Incident
	statuses  map[int]models.SystemStatus

	userSeq     int
	contactSeq  int
	incidentSeq int
	statusSeq   int

	now func() time.Time
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		users:     make(map[int]models.User),
		contacts:  make(map[int]models.EmergencyContact),
		incidents: make(map[int]models.Incident),
		statuses:  make(map[int]models.SystemStatus),
		now:       time.Now,
	}
}

// CreateUser присваивает пользователю id и сохраняет его
func (s *Store) CreateUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	u.ID = s.userSeq
	s.users[u.ID] = u
	return u
}

// GetUser возвращает пользователя по id
func (s *Store) GetUser(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return u, nil
}

// FindUserByUsername возвращает первого пользователя с указанным именем
func (s *Store) FindUserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		if s.users[id].Username == username {
			return s.users[id], nil
		}
	}
	return models.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

// CreateContact присваивает контакту id и сохраняет его
func (s *Store) CreateContact(c models.EmergencyContact) models.EmergencyContact {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contactSeq++
	c.ID = s.contactSeq
	s.contacts[c.ID] = c
	return c
}

// ListContacts возвращает все контакты в порядке создания
func (s *Store) ListContacts() []models.EmergencyContact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.EmergencyContact, 0, len(s.contacts))
	for _, id := range sortedKeys(s.contacts) {
		res = append(res, s.contacts[id])
	}
	return res
}

// CreateIncident присваивает инциденту внутренний id, заполняет значения по
// умолчанию и сохраняет его. Внешний incidentId обязан быть уникальным.
func (s *Store) CreateIncident(inc models.Incident) (models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.incidents {
		if existing.IncidentID == inc.IncidentID {
			return models.Incident{}, fmt.Errorf("incident %q: %w", inc.IncidentID, ErrDuplicateIncidentID)
		}
	}

	if inc.Status == "" {
		inc.Status = models.StatusActive
	}
	now := s.now()
	if inc.DetectedAt.IsZero() {
		inc.DetectedAt = now
	}
	inc.CreatedAt = now

	s.incidentSeq++
	inc.ID = s.incidentSeq
	s.incidents[inc.ID] = cloneIncident(inc)
	return inc, nil
}

// GetIncident возвращает инцидент по внутреннему id
func (s *Store) GetIncident(id int) (models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inc, ok := s.incidents[id]
	if !ok {
		return models.Incident{}, fmt.Errorf("incident %d: %w", id, ErrNotFound)
	}
	return cloneIncident(inc), nil
}

// FindIncidentByExternalID возвращает инцидент по внешнему incidentId
func (s *Store) FindIncidentByExternalID(incidentID string) (models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.incidents) {
		if s.incidents[id].IncidentID == incidentID {
			return cloneIncident(s.incidents[id]), nil
		}
	}
	return models.Incident{}, fmt.Errorf("incident %q: %w", incidentID, ErrNotFound)
}

// ListIncidents возвращает все инциденты в порядке создания
func (s *Store) ListIncidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Incident, 0, len(s.incidents))
	for _, id := range sortedKeys(s.incidents) {
		res = append(res, cloneIncident(s.incidents[id]))
	}
	return res
}

// ListActiveIncidents возвращает подмножество инцидентов со статусом active
func (s *Store) ListActiveIncidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Incident, 0)
	for _, id := range sortedKeys(s.incidents) {
		if s.incidents[id].Status == models.StatusActive {
			res = append(res, cloneIncident(s.incidents[id]))
		}
	}
	return res
}

// UpdateIncidentStatus переводит инцидент в новый статус и возвращает
// обновлённую копию. Статус должен быть одним из допустимых значений.
func (s *Store) UpdateIncidentStatus(id int, status string) (models.Incident, error) {
	if !models.ValidStatus(status) {
		return models.Incident{}, fmt.Errorf("status %q is not valid", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inc, ok := s.incidents[id]
	if !ok {
		return models.Incident{}, fmt.Errorf("incident %d: %w", id, ErrNotFound)
	}

	inc.Status = status
	s.incidents[id] = inc
	return cloneIncident(inc), nil
}

// CreateSystemStatus присваивает показателю id, проставляет LastUpdated и сохраняет его
func (s *Store) CreateSystemStatus(st models.SystemStatus) models.SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statusSeq++
	st.ID = s.statusSeq
	st.LastUpdated = s.now()
	s.statuses[st.ID] = cloneSystemStatus(st)
	return st
}

// ListSystemStatuses возвращает все показатели в порядке создания
func (s *Store) ListSystemStatuses() []models.SystemStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.SystemStatus, 0, len(s.statuses))
	for _, id := range sortedKeys(s.statuses) {
		res = append(res, cloneSystemStatus(s.statuses[id]))
	}
	return res
}

// UpdateSystemStatus применяет частичное обновление и обновляет LastUpdated
func (s *Store) UpdateSystemStatus(id int, upd models.SystemStatusUpdate) (models.SystemStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.statuses[id]
	if !ok {
		return models.SystemStatus{}, fmt.Errorf("system status %d: %w", id, ErrNotFound)
	}

	if upd.Name != nil {
		st.Name = *upd.Name
	}
	if upd.Status != nil {
		st.Status = *upd.Status
	}
	if upd.Value != nil {
		v := *upd.Value
		st.Value = &v
	}
	if upd.Percentage != nil {
		st.Percentage = *upd.Percentage
	}
	st.LastUpdated = s.now()

	s.statuses[id] = cloneSystemStatus(st)
	return cloneSystemStatus(st), nil
}

// cloneIncident копирует инцидент вместе с указателем Probability
func cloneIncident(inc models.Incident) models.Incident {
	if inc.Probability != nil {
		p := *inc.Probability
		inc.Probability = &p
	}
	return inc
}

// cloneSystemStatus копирует показатель вместе с указателем Value
func cloneSystemStatus(st models.SystemStatus) models.SystemStatus {
	if st.Value != nil {
		v := *st.Value
		st.Value = &v
	}
	return st
}

// sortedKeys возвращает ключи map по возрастанию. Id монотонны и не
// переиспользуются, поэтому порядок по id совпадает с порядком вставки.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
