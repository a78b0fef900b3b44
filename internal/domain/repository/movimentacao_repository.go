package repository

import "github.com/rafaelmp/gestao-loja-api/internal/domain/entity"

// MovimentacaoFiltro filtros opcionais para listagem de movimentações.
type MovimentacaoFiltro struct {
	ProdutoID string
	Tipo      string // entrada | saida | "" (todos)
}

// MovimentacaoComProduto movimentação com dados do produto (join de leitura).
type MovimentacaoComProduto struct {
	entity.MovimentacaoEstoque
	ProdutoNome      string
	ProdutoCategoria string
}

// MovimentacaoEstoqueRepository porta de persistência para o ledger de movimentações.
type MovimentacaoEstoqueRepository interface {
	Create(mov *entity.MovimentacaoEstoque) error
	GetByID(id string) (*entity.MovimentacaoEstoque, error)
	Update(mov *entity.MovimentacaoEstoque) error
	Delete(id string) error
	// List devolve movimentações com nome/categoria do produto, mais recentes primeiro.
	List(filtro MovimentacaoFiltro, limit, offset int) ([]*MovimentacaoComProduto, error)
	// CountByProduto número de movimentações que referenciam o produto (guarda de exclusão).
	CountByProduto(produtoID string) (int, error)
}
