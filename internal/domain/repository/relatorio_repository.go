package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// VendaResumoRow linha de venda para agregação (receita por mês).
type VendaResumoRow struct {
	DataVenda  time.Time
	ValorTotal decimal.Decimal
}

// ItemCustoRow item de venda com o custo do produto, já associado à data da venda.
type ItemCustoRow struct {
	DataVenda  time.Time
	Quantidade int
	PrecoCusto decimal.Decimal
}

// DespesaResumoRow linha de despesa para agregação.
type DespesaResumoRow struct {
	DataDespesa time.Time
	Valor       decimal.Decimal
}

// RelatorioRepository consultas read-only para relatórios e dashboard.
// Devolve linhas cruas; a agregação mensal é um fold puro na camada de aplicação.
type RelatorioRepository interface {
	ListVendasResumo(ctx context.Context, ano int) ([]VendaResumoRow, error)
	ListItensCusto(ctx context.Context, ano int) ([]ItemCustoRow, error)
	ListDespesasResumo(ctx context.Context, ano int) ([]DespesaResumoRow, error)
}
