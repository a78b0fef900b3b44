package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um produto do catálogo.
// QuantidadeEstoque é derivada do ledger de movimentações: toda alteração
// acontece na mesma transação que grava a movimentação correspondente.
type Produto struct {
	ID                string
	Nome              string
	PrecoCusto        decimal.Decimal // custo unitário de aquisição
	PrecoVenda        decimal.Decimal
	Categoria         string // texto livre
	QuantidadeEstoque int    // nunca negativo
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
