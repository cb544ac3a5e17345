package models

import "time"

// Neighborhood - район наблюдения. Создатель автоматически становится
// жителем и бессменным модератором.
type Neighborhood struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	CenterLat    int64     `json:"center_lat"`
	CenterLng    int64     `json:"center_lng"`
	RadiusMeters int64     `json:"radius_meters"`
	Residents    []string  `json:"residents"`
	Moderator    string    `json:"moderator"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Clone возвращает копию района с отдельным слайсом жителей
func (n *Neighborhood) Clone() *Neighborhood {
	cp := *n
	cp.Residents = make([]string, len(n.Residents))
	copy(cp.Residents, n.Residents)
	return &cp
}
