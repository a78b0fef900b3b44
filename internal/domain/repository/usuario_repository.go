package repository

import "github.com/rafaelmp/gestao-loja-api/internal/domain/entity"

// UsuarioRepository porta de persistência para usuários.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
