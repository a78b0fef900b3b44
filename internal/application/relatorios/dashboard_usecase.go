package relatorios

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

const dashboardUltimasMovimentacoes = 5

// DashboardUseCase monta o resumo do dashboard: totais do ano, unidades em
// estoque e últimas movimentações.
type DashboardUseCase struct {
	relatorios  *RelatorioUseCase
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoEstoqueRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	relatorios *RelatorioUseCase,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoEstoqueRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		relatorios:  relatorios,
		produtoRepo: produtoRepo,
		movRepo:     movRepo,
	}
}

// GetSummary constrói o DashboardSummaryDTO do ano indicado.
//
// Três buscas em paralelo:
//  1. relatório anual           → Totais
//  2. soma de estoque           → TotalProdutosEstoque
//  3. últimas 5 movimentações   → UltimasMovimentacoes
func (uc *DashboardUseCase) GetSummary(ctx context.Context, ano int) (*dto.DashboardSummaryDTO, error) {
	type relatorioResult struct {
		rel *dto.RelatorioAnualDTO
		err error
	}
	type estoqueResult struct {
		total int
		err   error
	}
	type movsResult struct {
		movs []*repository.MovimentacaoComProduto
		err  error
	}

	relCh := make(chan relatorioResult, 1)
	estoqueCh := make(chan estoqueResult, 1)
	movsCh := make(chan movsResult, 1)

	go func() {
		rel, err := uc.relatorios.GerarRelatorioAnual(ctx, ano)
		relCh <- relatorioResult{rel, err}
	}()
	go func() {
		total, err := uc.produtoRepo.SumEstoque()
		estoqueCh <- estoqueResult{total, err}
	}()
	go func() {
		movs, err := uc.movRepo.List(repository.MovimentacaoFiltro{}, dashboardUltimasMovimentacoes, 0)
		movsCh <- movsResult{movs, err}
	}()

	rel := <-relCh
	estoque := <-estoqueCh
	movs := <-movsCh

	if rel.err != nil {
		return nil, fmt.Errorf("dashboard: relatório anual: %w", rel.err)
	}
	if estoque.err != nil {
		return nil, fmt.Errorf("dashboard: soma de estoque: %w", estoque.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: últimas movimentações: %w", movs.err)
	}

	ultimas := make([]dto.MovimentacaoResponse, 0, len(movs.movs))
	for _, m := range movs.movs {
		ultimas = append(ultimas, dto.MovimentacaoResponse{
			ID:               m.ID,
			ProdutoID:        m.ProdutoID,
			ProdutoNome:      m.ProdutoNome,
			ProdutoCategoria: m.ProdutoCategoria,
			Tipo:             m.Tipo,
			Quantidade:       m.Quantidade,
			Motivo:           m.Motivo,
			DataMovimentacao: m.DataMovimentacao,
			CreatedAt:        m.CreatedAt,
		})
	}

	return &dto.DashboardSummaryDTO{
		Ano:                  ano,
		Totais:               rel.rel.Totais,
		TotalProdutosEstoque: estoque.total,
		UltimasMovimentacoes: ultimas,
		GeradoEm:             time.Now(),
	}, nil
}
