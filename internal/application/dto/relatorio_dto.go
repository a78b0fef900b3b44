package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RelatorioMensalDTO um mês do relatório anual.
type RelatorioMensalDTO struct {
	Mes         string          `json:"mes"` // Jan..Dez
	Vendas      decimal.Decimal `json:"vendas"`
	Custos      decimal.Decimal `json:"custos"`
	Despesas    decimal.Decimal `json:"despesas"`
	Lucro       decimal.Decimal `json:"lucro"`
	MargemBruta decimal.Decimal `json:"margem_bruta"` // percentual; 0 quando vendas = 0
}

// RelatorioTotaisDTO totais do ano.
type RelatorioTotaisDTO struct {
	Vendas        decimal.Decimal `json:"vendas"`
	Custos        decimal.Decimal `json:"custos"`
	Despesas      decimal.Decimal `json:"despesas"`
	Lucro         decimal.Decimal `json:"lucro"`
	MargemBruta   decimal.Decimal `json:"margem_bruta"`
	MargemLiquida decimal.Decimal `json:"margem_liquida"`
}

// RelatorioAnualDTO resposta de GET /api/relatorios/mensal.
type RelatorioAnualDTO struct {
	Ano    int                  `json:"ano"`
	Meses  []RelatorioMensalDTO `json:"meses"` // sempre 12 posições
	Totais RelatorioTotaisDTO   `json:"totais"`
}

// DashboardSummaryDTO resposta de GET /api/dashboard.
type DashboardSummaryDTO struct {
	Ano                  int                    `json:"ano"`
	Totais               RelatorioTotaisDTO     `json:"totais"`
	TotalProdutosEstoque int                    `json:"total_produtos_estoque"`
	UltimasMovimentacoes []MovimentacaoResponse `json:"ultimas_movimentacoes"`
	GeradoEm             time.Time              `json:"gerado_em"`
}
