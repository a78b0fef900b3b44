package repository

import "github.com/rafaelmp/gestao-loja-api/internal/domain/entity"

// VendaRepository porta de persistência para vendas e itens de venda.
// Itens são imutáveis; a exclusão da venda remove os itens por cascade no banco.
type VendaRepository interface {
	Create(venda *entity.Venda) error
	CreateItem(item *entity.ItemVenda) error
	// GetByID devolve a venda com seus itens (nome do produto via join).
	GetByID(id string) (*entity.Venda, error)
	// List devolve vendas sem itens, mais recentes primeiro por data_venda.
	List(limit, offset int) ([]*entity.Venda, error)
	Delete(id string) error
	// CountItensByProduto número de itens de venda que referenciam o produto (guarda de exclusão).
	CountItensByProduto(produtoID string) (int, error)
}
