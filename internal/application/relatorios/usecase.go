// Package relatorios contém os casos de uso de relatório financeiro mensal e
// do dashboard. A agregação é um fold puro e determinístico sobre as linhas
// buscadas: nenhum efeito colateral, totalmente re-derivável dos dados.
package relatorios

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

var mesesAbrev = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

var cem = decimal.NewFromInt(100)

// RelatorioUseCase gera o relatório financeiro anual agrupado por mês.
type RelatorioUseCase struct {
	relatorioRepo repository.RelatorioRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(relatorioRepo repository.RelatorioRepository) *RelatorioUseCase {
	return &RelatorioUseCase{relatorioRepo: relatorioRepo}
}

// AgregarMensal agrupa vendas, custos e despesas por mês do calendário e
// calcula lucro e margem bruta. Sempre devolve 12 posições (Jan..Dez), com
// zeros nos meses sem registros; margem bruta é 0 quando não há receita
// (nunca NaN ou divisão por zero).
func AgregarMensal(
	ano int,
	vendas []repository.VendaResumoRow,
	itens []repository.ItemCustoRow,
	despesas []repository.DespesaResumoRow,
) []dto.RelatorioMensalDTO {
	meses := make([]dto.RelatorioMensalDTO, 12)
	for i := range meses {
		meses[i] = dto.RelatorioMensalDTO{
			Mes:         mesesAbrev[i],
			Vendas:      decimal.Zero,
			Custos:      decimal.Zero,
			Despesas:    decimal.Zero,
			Lucro:       decimal.Zero,
			MargemBruta: decimal.Zero,
		}
	}

	for _, v := range vendas {
		if v.DataVenda.Year() != ano {
			continue
		}
		m := int(v.DataVenda.Month()) - 1
		meses[m].Vendas = meses[m].Vendas.Add(v.ValorTotal)
	}
	for _, item := range itens {
		if item.DataVenda.Year() != ano {
			continue
		}
		m := int(item.DataVenda.Month()) - 1
		custo := decimal.NewFromInt(int64(item.Quantidade)).Mul(item.PrecoCusto)
		meses[m].Custos = meses[m].Custos.Add(custo)
	}
	for _, d := range despesas {
		if d.DataDespesa.Year() != ano {
			continue
		}
		m := int(d.DataDespesa.Month()) - 1
		meses[m].Despesas = meses[m].Despesas.Add(d.Valor)
	}

	for i := range meses {
		meses[i].Lucro = meses[i].Vendas.Sub(meses[i].Custos).Sub(meses[i].Despesas)
		meses[i].MargemBruta = margemPct(meses[i].Vendas, meses[i].Custos)
	}
	return meses
}

// TotaisAnuais reduz os 12 meses aos totais do ano, incluindo margem líquida
// (lucro sobre receita).
func TotaisAnuais(meses []dto.RelatorioMensalDTO) dto.RelatorioTotaisDTO {
	totais := dto.RelatorioTotaisDTO{
		Vendas:        decimal.Zero,
		Custos:        decimal.Zero,
		Despesas:      decimal.Zero,
		Lucro:         decimal.Zero,
		MargemBruta:   decimal.Zero,
		MargemLiquida: decimal.Zero,
	}
	for _, m := range meses {
		totais.Vendas = totais.Vendas.Add(m.Vendas)
		totais.Custos = totais.Custos.Add(m.Custos)
		totais.Despesas = totais.Despesas.Add(m.Despesas)
	}
	totais.Lucro = totais.Vendas.Sub(totais.Custos).Sub(totais.Despesas)
	totais.MargemBruta = margemPct(totais.Vendas, totais.Custos)
	if totais.Vendas.GreaterThan(decimal.Zero) {
		totais.MargemLiquida = totais.Lucro.Div(totais.Vendas).Mul(cem).Round(2)
	}
	return totais
}

// margemPct devolve (vendas - custos) / vendas × 100, ou 0 quando vendas = 0.
func margemPct(vendas, custos decimal.Decimal) decimal.Decimal {
	if !vendas.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return vendas.Sub(custos).Div(vendas).Mul(cem).Round(2)
}

// GerarRelatorioAnual busca as linhas do ano em três consultas paralelas e
// aplica o fold mensal.
func (uc *RelatorioUseCase) GerarRelatorioAnual(ctx context.Context, ano int) (*dto.RelatorioAnualDTO, error) {
	type vendasResult struct {
		rows []repository.VendaResumoRow
		err  error
	}
	type itensResult struct {
		rows []repository.ItemCustoRow
		err  error
	}
	type despesasResult struct {
		rows []repository.DespesaResumoRow
		err  error
	}

	vendasCh := make(chan vendasResult, 1)
	itensCh := make(chan itensResult, 1)
	despesasCh := make(chan despesasResult, 1)

	go func() {
		rows, err := uc.relatorioRepo.ListVendasResumo(ctx, ano)
		vendasCh <- vendasResult{rows, err}
	}()
	go func() {
		rows, err := uc.relatorioRepo.ListItensCusto(ctx, ano)
		itensCh <- itensResult{rows, err}
	}()
	go func() {
		rows, err := uc.relatorioRepo.ListDespesasResumo(ctx, ano)
		despesasCh <- despesasResult{rows, err}
	}()

	vendas := <-vendasCh
	itens := <-itensCh
	despesas := <-despesasCh

	if vendas.err != nil {
		return nil, fmt.Errorf("relatório: vendas do ano: %w", vendas.err)
	}
	if itens.err != nil {
		return nil, fmt.Errorf("relatório: custos do ano: %w", itens.err)
	}
	if despesas.err != nil {
		return nil, fmt.Errorf("relatório: despesas do ano: %w", despesas.err)
	}

	meses := AgregarMensal(ano, vendas.rows, itens.rows, despesas.rows)
	return &dto.RelatorioAnualDTO{
		Ano:    ano,
		Meses:  meses,
		Totais: TotaisAnuais(meses),
	}, nil
}
