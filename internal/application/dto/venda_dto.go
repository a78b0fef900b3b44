package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemVendaRequest uma linha da venda. PrecoUnitario zero usa o preço de venda
// atual do produto.
type ItemVendaRequest struct {
	ProdutoID     string          `json:"produto_id" validate:"required"`
	Quantidade    int             `json:"quantidade" validate:"required,gt=0"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// CreateVendaRequest body para POST /api/vendas.
type CreateVendaRequest struct {
	DataVenda      *time.Time         `json:"data_venda,omitempty"` // padrão: agora
	FormaPagamento string             `json:"forma_pagamento" validate:"required"`
	Itens          []ItemVendaRequest `json:"itens" validate:"required,min=1"`
}

// ItemVendaResponse saída de um item de venda.
type ItemVendaResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	ProdutoNome   string          `json:"produto_nome,omitempty"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// VendaResponse saída de uma venda.
type VendaResponse struct {
	ID             string              `json:"id"`
	DataVenda      time.Time           `json:"data_venda"`
	ValorTotal     decimal.Decimal     `json:"valor_total"`
	FormaPagamento string              `json:"forma_pagamento"`
	CreatedAt      time.Time           `json:"created_at"`
	Itens          []ItemVendaResponse `json:"itens,omitempty"`
}

// VendaListResponse lista paginada de vendas (sem itens).
type VendaListResponse struct {
	Items []VendaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
