package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDespesaRequest body para POST /api/despesas.
type CreateDespesaRequest struct {
	Descricao   string          `json:"descricao" validate:"required,min=1,max=300"`
	Valor       decimal.Decimal `json:"valor" validate:"required"`
	DataDespesa *time.Time      `json:"data_despesa,omitempty"` // padrão: hoje
}

// UpdateDespesaRequest body para PUT /api/despesas/:id.
type UpdateDespesaRequest struct {
	Descricao   *string          `json:"descricao" validate:"omitempty,min=1,max=300"`
	Valor       *decimal.Decimal `json:"valor"`
	DataDespesa *time.Time       `json:"data_despesa"`
}

// DespesaResponse saída de uma despesa.
type DespesaResponse struct {
	ID          string          `json:"id"`
	Descricao   string          `json:"descricao"`
	Valor       decimal.Decimal `json:"valor"`
	DataDespesa time.Time       `json:"data_despesa"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DespesaListResponse lista paginada de despesas.
type DespesaListResponse struct {
	Items []DespesaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
