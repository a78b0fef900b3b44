package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Despesa representa uma despesa do negócio.
type Despesa struct {
	ID          string
	Descricao   string
	Valor       decimal.Decimal // sempre positivo
	DataDespesa time.Time
	CreatedAt   time.Time
}
