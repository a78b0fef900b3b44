package repository

import "github.com/rafaelmp/gestao-loja-api/internal/domain/entity"

// DespesaRepository porta de persistência para despesas.
type DespesaRepository interface {
	Create(despesa *entity.Despesa) error
	GetByID(id string) (*entity.Despesa, error)
	List(limit, offset int) ([]*entity.Despesa, error)
	Update(despesa *entity.Despesa) error
	Delete(id string) error
}
