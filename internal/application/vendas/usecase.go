// Package vendas contém os casos de uso de venda: composição de itens,
// baixa de estoque e persistência em uma única transação.
package vendas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/application/estoque"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

// VendaUseCase cria, consulta e cancela vendas. A criação registra uma saída
// de estoque por item e grava venda + itens na mesma transação, fechando a
// janela de venda órfã que uma sequência de escritas independentes deixaria.
type VendaUseCase struct {
	txRunner    VendaTxRunner
	produtoRepo repository.ProdutoRepository
	vendaRepo   repository.VendaRepository
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(
	txRunner VendaTxRunner,
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
) *VendaUseCase {
	return &VendaUseCase{
		txRunner:    txRunner,
		produtoRepo: produtoRepo,
		vendaRepo:   vendaRepo,
	}
}

// CriarVenda valida os itens, calcula subtotais e total no servidor e grava
// tudo em uma transação. Se qualquer item não tiver estoque suficiente a venda
// inteira é rejeitada com ErrInsufficientStock (sem commit parcial).
func (uc *VendaUseCase) CriarVenda(ctx context.Context, in dto.CreateVendaRequest) (*dto.VendaResponse, error) {
	if len(in.Itens) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.FormaPagamentoValida(in.FormaPagamento) {
		return nil, domain.ErrInvalidInput
	}

	// Valida produtos e preços fora da tx (somente leitura). O preço unitário
	// zero assume o preço de venda atual do produto.
	produtosByID := make(map[string]*entity.Produto)
	for i := range in.Itens {
		item := &in.Itens[i]
		if item.ProdutoID == "" || item.Quantidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.PrecoUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		produto, ok := produtosByID[item.ProdutoID]
		if !ok {
			var err error
			produto, err = uc.produtoRepo.GetByID(item.ProdutoID)
			if err != nil {
				return nil, err
			}
			if produto == nil {
				return nil, domain.ErrNotFound
			}
			produtosByID[item.ProdutoID] = produto
		}
		if item.PrecoUnitario.IsZero() {
			item.PrecoUnitario = produto.PrecoVenda
		}
	}

	now := time.Now()
	dataVenda := now
	if in.DataVenda != nil {
		dataVenda = *in.DataVenda
	}

	vendaID := uuid.New().String()
	var valorTotal decimal.Decimal
	itens := make([]*entity.ItemVenda, 0, len(in.Itens))
	for _, item := range in.Itens {
		subtotal := decimal.NewFromInt(int64(item.Quantidade)).Mul(item.PrecoUnitario)
		valorTotal = valorTotal.Add(subtotal)
		itens = append(itens, &entity.ItemVenda{
			ID:            uuid.New().String(),
			VendaID:       vendaID,
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      subtotal,
		})
	}

	venda := &entity.Venda{
		ID:             vendaID,
		DataVenda:      dataVenda,
		ValorTotal:     valorTotal,
		FormaPagamento: in.FormaPagamento,
		CreatedAt:      now,
	}

	err := uc.txRunner.RunVenda(ctx, func(
		movRepo repository.MovimentacaoEstoqueRepository,
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error {
		// Uma saída por item, com a linha do produto bloqueada. Itens repetidos
		// do mesmo produto acumulam naturalmente: cada saída relê o saldo já
		// decrementado dentro da mesma tx.
		for _, item := range itens {
			mov := &entity.MovimentacaoEstoque{
				ID:               uuid.New().String(),
				ProdutoID:        item.ProdutoID,
				Tipo:             entity.MovimentacaoSaida,
				Quantidade:       item.Quantidade,
				Motivo:           fmt.Sprintf("Venda %s", vendaID),
				DataMovimentacao: dataVenda,
				CreatedAt:        now,
			}
			if err := estoque.RegistrarEmTx(movRepo, produtoRepo, mov); err != nil {
				return err
			}
		}
		if err := vendaRepo.Create(venda); err != nil {
			return err
		}
		for _, item := range itens {
			if err := vendaRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	venda.Itens = make([]entity.ItemVenda, 0, len(itens))
	for _, item := range itens {
		venda.Itens = append(venda.Itens, *item)
	}
	return toVendaResponse(venda, true), nil
}

// ListarVendas lista vendas sem itens, mais recentes primeiro.
func (uc *VendaUseCase) ListarVendas(limit, offset int) (*dto.VendaListResponse, error) {
	list, err := uc.vendaRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar vendas: %w", err)
	}
	items := make([]dto.VendaResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendaResponse(v, false))
	}
	return &dto.VendaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ObterVenda devolve uma venda com seus itens.
func (uc *VendaUseCase) ObterVenda(id string) (*dto.VendaResponse, error) {
	venda, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, nil
	}
	return toVendaResponse(venda, true), nil
}

// CancelarVenda devolve o estoque de cada item via movimentações de entrada e
// exclui a venda, tudo na mesma transação. Os itens saem por cascade no banco.
func (uc *VendaUseCase) CancelarVenda(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunVenda(ctx, func(
		movRepo repository.MovimentacaoEstoqueRepository,
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error {
		venda, err := vendaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if venda == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		for _, item := range venda.Itens {
			mov := &entity.MovimentacaoEstoque{
				ID:               uuid.New().String(),
				ProdutoID:        item.ProdutoID,
				Tipo:             entity.MovimentacaoEntrada,
				Quantidade:       item.Quantidade,
				Motivo:           fmt.Sprintf("Cancelamento da venda %s", id),
				DataMovimentacao: now,
				CreatedAt:        now,
			}
			if err := estoque.RegistrarEmTx(movRepo, produtoRepo, mov); err != nil {
				return err
			}
		}
		return vendaRepo.Delete(id)
	})
}

func toVendaResponse(v *entity.Venda, comItens bool) *dto.VendaResponse {
	if v == nil {
		return nil
	}
	out := &dto.VendaResponse{
		ID:             v.ID,
		DataVenda:      v.DataVenda,
		ValorTotal:     v.ValorTotal,
		FormaPagamento: v.FormaPagamento,
		CreatedAt:      v.CreatedAt,
	}
	if comItens {
		out.Itens = make([]dto.ItemVendaResponse, 0, len(v.Itens))
		for _, item := range v.Itens {
			out.Itens = append(out.Itens, dto.ItemVendaResponse{
				ID:            item.ID,
				ProdutoID:     item.ProdutoID,
				ProdutoNome:   item.ProdutoNome,
				Quantidade:    item.Quantidade,
				PrecoUnitario: item.PrecoUnitario,
				Subtotal:      item.Subtotal,
			})
		}
	}
	return out
}
