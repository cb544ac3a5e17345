package models

import "time"

// User - зарегистрированный житель. ContactInfo хранится как непрозрачная
// строка, шифрование выполняет клиент.
type User struct {
	Address          string    `json:"address"`
	IsRegistered     bool      `json:"is_registered"`
	IsVerified       bool      `json:"is_verified"`
	IsFirstResponder bool      `json:"is_first_responder"`
	ReputationScore  int64     `json:"reputation_score"`
	AlertsReported   int64     `json:"alerts_reported"`
	AlertsResponded  int64     `json:"alerts_responded"`
	ContactInfo      string    `json:"contact_info"`
	RegisteredAt     time.Time `json:"registered_at"`
}

// AddReputation увеличивает репутацию
func (u *User) AddReputation(points int64) {
	u.ReputationScore += points
}

// SubReputation уменьшает репутацию, не опускаясь ниже нуля
func (u *User) SubReputation(points int64) {
	if u.ReputationScore <= points {
		u.ReputationScore = 0
		return
	}
	u.ReputationScore -= points
}

// Clone возвращает копию пользователя
func (u *User) Clone() *User {
	cp := *u
	return &cp
}
