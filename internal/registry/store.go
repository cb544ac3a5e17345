package registry

import (
	"github.com/Deibormi/Neighborhood-Security-Network/internal/models"
)

// Store - явные хранилища состояния реестра. Все коллекции принадлежат
// только реестру, наружу отдаются копии. Поля экспортированы ради
// JSON-снапшотов, напрямую со Store работает только Registry под своим мьютексом.
type Store struct {
	Alerts            map[uint64]*models.Alert        `json:"alerts"`
	Users             map[string]*models.User         `json:"users"`
	Neighborhoods     map[uint64]*models.Neighborhood `json:"neighborhoods"`
	EmergencyServices map[string]bool                 `json:"emergency_services"`

	// Счетчики последовательных id, первый выданный id равен 1
	NextAlertID        uint64 `json:"next_alert_id"`
	NextNeighborhoodID uint64 `json:"next_neighborhood_id"`
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		Alerts:             make(map[uint64]*models.Alert),
		Users:              make(map[string]*models.User),
		Neighborhoods:      make(map[uint64]*models.Neighborhood),
		EmergencyServices:  make(map[string]bool),
		NextAlertID:        1,
		NextNeighborhoodID: 1,
	}
}

func (s *Store) allocAlertID() uint64 {
	id := s.NextAlertID
	s.NextAlertID++
	return id
}

func (s *Store) allocNeighborhoodID() uint64 {
	id := s.NextNeighborhoodID
	s.NextNeighborhoodID++
	return id
}

// registeredUser возвращает пользователя, если он зарегистрирован
func (s *Store) registeredUser(address string) (*models.User, bool) {
	u, ok := s.Users[address]
	if !ok || !u.IsRegistered {
		return nil, false
	}
	return u, true
}

// Clone возвращает глубокую копию хранилища для снапшотов
func (s *Store) Clone() *Store {
	cp := NewStore()
	cp.NextAlertID = s.NextAlertID
	cp.NextNeighborhoodID = s.NextNeighborhoodID
	for id, a := range s.Alerts {
		cp.Alerts[id] = a.Clone()
	}
	for addr, u := range s.Users {
		cp.Users[addr] = u.Clone()
	}
	for id, n := range s.Neighborhoods {
		cp.Neighborhoods[id] = n.Clone()
	}
	for addr, ok := range s.EmergencyServices {
		cp.EmergencyServices[addr] = ok
	}
	return cp
}

// normalize дозаполняет nil-поля после json.Unmarshal снапшота
func (s *Store) normalize() {
	if s.Alerts == nil {
		s.Alerts = make(map[uint64]*models.Alert)
	}
	if s.Users == nil {
		s.Users = make(map[string]*models.User)
	}
	if s.Neighborhoods == nil {
		s.Neighborhoods = make(map[uint64]*models.Neighborhood)
	}
	if s.EmergencyServices == nil {
		s.EmergencyServices = make(map[string]bool)
	}
	if s.NextAlertID == 0 {
		s.NextAlertID = 1
	}
	if s.NextNeighborhoodID == 0 {
		s.NextNeighborhoodID = 1
	}
}
