package models

import "time"

// SystemStatus — показатель состояния подсистемы (камеры, сенсоры, сервер).
// Обновляется внешним монитором через частичный PATCH.
type SystemStatus struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Value       *int      `json:"value,omitempty"`
	Percentage  int       `json:"percentage"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// SystemStatusUpdate — частичное обновление показателя: nil-поля не трогаются
type SystemStatusUpdate struct {
	Name       *string
	Status     *string
	Value      *int
	Percentage *int
}
