package models

import "time"

// AlertType - тип тревоги
type AlertType string

const (
	AlertTypeEmergency     AlertType = "EMERGENCY"
	AlertTypeSuspicious    AlertType = "SUSPICIOUS"
	AlertTypeWeather       AlertType = "WEATHER"
	AlertTypeMissingPerson AlertType = "MISSING_PERSON"
	AlertTypeTraffic       AlertType = "TRAFFIC"
	AlertTypeUtility       AlertType = "UTILITY"
)

// Valid проверяет, что тип тревоги входит в список известных
func (t AlertType) Valid() bool {
	switch t {
	case AlertTypeEmergency, AlertTypeSuspicious, AlertTypeWeather,
		AlertTypeMissingPerson, AlertTypeTraffic, AlertTypeUtility:
		return true
	}
	return false
}

// AlertStatus - статус тревоги. Переход только ACTIVE -> RESOLVED | FALSE_ALARM
type AlertStatus string

const (
	AlertStatusActive     AlertStatus = "ACTIVE"
	AlertStatusResolved   AlertStatus = "RESOLVED"
	AlertStatusFalseAlarm AlertStatus = "FALSE_ALARM"
)

// Terminal сообщает, является ли статус конечным
func (s AlertStatus) Terminal() bool {
	return s == AlertStatusResolved || s == AlertStatusFalseAlarm
}

// Alert - тревога, зарегистрированная жителем.
// Координаты хранятся как целые числа с фиксированной точкой (микроградусы),
// без геовалидации. Responders хранится в порядке добавления, без дубликатов.
type Alert struct {
	ID           uint64      `json:"id"`
	Reporter     string      `json:"reporter"`
	Type         AlertType   `json:"type"`
	Status       AlertStatus `json:"status"`
	Location     string      `json:"location"`
	Description  string      `json:"description"`
	Latitude     int64       `json:"latitude"`
	Longitude    int64       `json:"longitude"`
	RadiusMeters int64       `json:"radius_meters"`
	Responders   []string    `json:"responders"`
	Verified     bool        `json:"verified"`
	CreatedAt    time.Time   `json:"created_at"`
}

// HasResponder проверяет линейным проходом, откликался ли уже адрес
func (a *Alert) HasResponder(identity string) bool {
	for _, r := range a.Responders {
		if r == identity {
			return true
		}
	}
	return false
}

// Clone возвращает копию тревоги с отдельным слайсом откликнувшихся
func (a *Alert) Clone() *Alert {
	cp := *a
	cp.Responders = make([]string, len(a.Responders))
	copy(cp.Responders, a.Responders)
	return &cp
}
