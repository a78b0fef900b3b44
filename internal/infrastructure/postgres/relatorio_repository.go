package postgres

import (
	"context"
	"fmt"

	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas read-only sobre o ano informado.
// Os intervalos usam [1º jan, 1º jan do ano seguinte) para aproveitar índices por data.
type RelatorioRepo struct {
	q Querier
}

func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

func (r *RelatorioRepo) ListVendasResumo(ctx context.Context, ano int) ([]repository.VendaResumoRow, error) {
	query := `
		SELECT data_venda, valor_total
		FROM vendas
		WHERE data_venda >= make_date($1, 1, 1)
		  AND data_venda < make_date($1 + 1, 1, 1)`
	rows, err := r.q.Query(ctx, query, ano)
	if err != nil {
		return nil, fmt.Errorf("list resumo de vendas: %w", err)
	}
	defer rows.Close()
	var out []repository.VendaResumoRow
	for rows.Next() {
		var row repository.VendaResumoRow
		if err := rows.Scan(&row.DataVenda, &row.ValorTotal); err != nil {
			return nil, fmt.Errorf("scan resumo de venda: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListItensCusto devolve cada item vendido no ano com o preço de custo
// atual do produto, associado à data da venda.
func (r *RelatorioRepo) ListItensCusto(ctx context.Context, ano int) ([]repository.ItemCustoRow, error) {
	query := `
		SELECT v.data_venda, i.quantidade, p.preco_custo
		FROM itens_venda i
		JOIN vendas v ON v.id = i.venda_id
		JOIN produtos p ON p.id = i.produto_id
		WHERE v.data_venda >= make_date($1, 1, 1)
		  AND v.data_venda < make_date($1 + 1, 1, 1)`
	rows, err := r.q.Query(ctx, query, ano)
	if err != nil {
		return nil, fmt.Errorf("list custos de itens: %w", err)
	}
	defer rows.Close()
	var out []repository.ItemCustoRow
	for rows.Next() {
		var row repository.ItemCustoRow
		if err := rows.Scan(&row.DataVenda, &row.Quantidade, &row.PrecoCusto); err != nil {
			return nil, fmt.Errorf("scan custo de item: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *RelatorioRepo) ListDespesasResumo(ctx context.Context, ano int) ([]repository.DespesaResumoRow, error) {
	query := `
		SELECT data_despesa, valor
		FROM despesas
		WHERE data_despesa >= make_date($1, 1, 1)
		  AND data_despesa < make_date($1 + 1, 1, 1)`
	rows, err := r.q.Query(ctx, query, ano)
	if err != nil {
		return nil, fmt.Errorf("list resumo de despesas: %w", err)
	}
	defer rows.Close()
	var out []repository.DespesaResumoRow
	for rows.Next() {
		var row repository.DespesaResumoRow
		if err := rows.Scan(&row.DataDespesa, &row.Valor); err != nil {
			return nil, fmt.Errorf("scan resumo de despesa: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
