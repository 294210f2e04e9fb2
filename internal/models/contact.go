package models

// EmergencyContact — карточка экстренной службы. Создаётся только при
// старте (seed), путей обновления и удаления нет.
type EmergencyContact struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	PhoneNumber string `json:"phoneNumber"`
	ButtonColor string `json:"buttonColor"`
}
