package models

// User — учётная запись оператора дашборда. Пароль хранится и сравнивается
// как есть, без хеширования.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"isAdmin"`
}
