package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para criar um produto. Estoque inicia em 0 e
// só muda via movimentações.
type CreateProdutoRequest struct {
	Nome       string          `json:"nome" validate:"required,min=1,max=200"`
	PrecoCusto decimal.Decimal `json:"preco_custo"`
	PrecoVenda decimal.Decimal `json:"preco_venda"`
	Categoria  string          `json:"categoria"`
}

// UpdateProdutoRequest entrada para atualizar um produto (nunca o estoque).
type UpdateProdutoRequest struct {
	Nome       *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	PrecoCusto *decimal.Decimal `json:"preco_custo"`
	PrecoVenda *decimal.Decimal `json:"preco_venda"`
	Categoria  *string          `json:"categoria"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID                string          `json:"id"`
	Nome              string          `json:"nome"`
	PrecoCusto        decimal.Decimal `json:"preco_custo"`
	PrecoVenda        decimal.Decimal `json:"preco_venda"`
	Categoria         string          `json:"categoria"`
	QuantidadeEstoque int             `json:"quantidade_estoque"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProdutoListResponse lista paginada de produtos.
type ProdutoListResponse struct {
	Items []ProdutoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
