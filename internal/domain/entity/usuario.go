package entity

import "time"

// Usuario representa um usuário da aplicação (autenticação via email + senha).
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string
	Nome         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
