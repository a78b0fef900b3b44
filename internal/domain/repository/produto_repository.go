package repository

import "github.com/rafaelmp/gestao-loja-api/internal/domain/entity"

// ProdutoRepository porta de persistência para produtos.
// GetForUpdate e UpdateEstoque são usados pelo motor de estoque dentro de
// transação; nunca alterar QuantidadeEstoque fora desse caminho.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetForUpdate bloqueia a linha do produto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Produto, error)
	List(limit, offset int) ([]*entity.Produto, error)
	Update(produto *entity.Produto) error
	// UpdateEstoque grava a nova quantidade em estoque (só dentro de tx).
	UpdateEstoque(id string, quantidade int) error
	Delete(id string) error
	// SumEstoque devolve o total de unidades em estoque de todos os produtos.
	SumEstoque() (int, error)
}
