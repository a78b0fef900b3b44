// Package estoque contém o motor de consistência do estoque: todo ajuste de
// quantidade passa por aqui, sempre na mesma transação que grava (ou reverte)
// a movimentação correspondente no ledger.
package estoque

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

// MovimentacaoUseCase registra, edita e exclui movimentações de estoque de
// forma transacional, com bloqueio da linha do produto (SELECT FOR UPDATE).
type MovimentacaoUseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	movRepo     repository.MovimentacaoEstoqueRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentacaoEstoqueRepository,
) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{
		txRunner:    txRunner,
		produtoRepo: produtoRepo,
		movRepo:     movRepo,
	}
}

func validarTipoQuantidade(tipo string, quantidade int) error {
	if tipo != entity.MovimentacaoEntrada && tipo != entity.MovimentacaoSaida {
		return domain.ErrInvalidInput
	}
	if quantidade <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// RegistrarMovimentacao valida a entrada, bloqueia a linha do produto e grava
// movimentação + novo estoque na mesma transação. Saída com quantidade maior
// que o estoque atual retorna ErrInsufficientStock sem gravar nada.
func (uc *MovimentacaoUseCase) RegistrarMovimentacao(ctx context.Context, in dto.RegisterMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	// Validações antes de qualquer acesso ao banco
	if in.ProdutoID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validarTipoQuantidade(in.Tipo, in.Quantidade); err != nil {
		return nil, err
	}

	produto, err := uc.produtoRepo.GetByID(in.ProdutoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	dataMov := now
	if in.DataMovimentacao != nil {
		dataMov = *in.DataMovimentacao
	}
	motivo := in.Motivo
	if motivo == "" {
		if in.Tipo == entity.MovimentacaoEntrada {
			motivo = "Entrada manual de estoque"
		} else {
			motivo = "Saída manual de estoque"
		}
	}

	mov := &entity.MovimentacaoEstoque{
		ID:               uuid.New().String(),
		ProdutoID:        in.ProdutoID,
		Tipo:             in.Tipo,
		Quantidade:       in.Quantidade,
		Motivo:           motivo,
		DataMovimentacao: dataMov,
		CreatedAt:        now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoEstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		return RegistrarEmTx(movRepo, produtoRepo, mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovimentacaoResponse(mov, produto.Nome, produto.Categoria), nil
}

// RegistrarEmTx aplica uma movimentação usando os repositórios fornecidos
// (mesma transação do caller): bloqueia a linha do produto, verifica que o
// estoque resultante não fica negativo, grava o novo estoque e a movimentação.
// Usado também pelo caso de uso de vendas para as saídas por item.
func RegistrarEmTx(
	movRepo repository.MovimentacaoEstoqueRepository,
	produtoRepo repository.ProdutoRepository,
	mov *entity.MovimentacaoEstoque,
) error {
	produto, err := produtoRepo.GetForUpdate(mov.ProdutoID)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	novo := produto.QuantidadeEstoque + mov.Delta()
	if novo < 0 {
		return domain.ErrInsufficientStock
	}
	if err := produtoRepo.UpdateEstoque(mov.ProdutoID, novo); err != nil {
		return err
	}
	return movRepo.Create(mov)
}

// AtualizarMovimentacao edita uma movimentação como reversão do efeito
// original seguida da aplicação do novo, em uma única transação. Se qualquer
// uma das duas etapas deixaria o estoque negativo, nada é alterado.
func (uc *MovimentacaoUseCase) AtualizarMovimentacao(ctx context.Context, id string, in dto.UpdateMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validarTipoQuantidade(in.Tipo, in.Quantidade); err != nil {
		return nil, err
	}

	var atualizada *entity.MovimentacaoEstoque
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoEstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		produto, err := produtoRepo.GetForUpdate(mov.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}

		// Reverte o efeito original...
		revertido := produto.QuantidadeEstoque - mov.Delta()
		if revertido < 0 {
			return domain.ErrInsufficientStock
		}
		// ...e aplica o novo
		mov.Tipo = in.Tipo
		mov.Quantidade = in.Quantidade
		if in.Motivo != "" {
			mov.Motivo = in.Motivo
		}
		novo := revertido + mov.Delta()
		if novo < 0 {
			return domain.ErrInsufficientStock
		}
		if err := produtoRepo.UpdateEstoque(mov.ProdutoID, novo); err != nil {
			return err
		}
		if err := movRepo.Update(mov); err != nil {
			return err
		}
		atualizada = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMovimentacaoResponse(atualizada, "", ""), nil
}

// ExcluirMovimentacao remove uma movimentação revertendo seu efeito sobre o
// estoque na mesma transação. Excluir uma entrada cujo saldo já foi consumido
// deixaria o estoque negativo e por isso é recusado.
func (uc *MovimentacaoUseCase) ExcluirMovimentacao(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoEstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		mov, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		produto, err := produtoRepo.GetForUpdate(mov.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}
		revertido := produto.QuantidadeEstoque - mov.Delta()
		if revertido < 0 {
			return domain.ErrInsufficientStock
		}
		if err := produtoRepo.UpdateEstoque(mov.ProdutoID, revertido); err != nil {
			return err
		}
		return movRepo.Delete(id)
	})
}

// ListarMovimentacoes lista movimentações com nome/categoria do produto,
// mais recentes primeiro.
func (uc *MovimentacaoUseCase) ListarMovimentacoes(filtro repository.MovimentacaoFiltro, limit, offset int) (*dto.MovimentacaoListResponse, error) {
	list, err := uc.movRepo.List(filtro, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimentações: %w", err)
	}
	items := make([]dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovimentacaoResponse(&m.MovimentacaoEstoque, m.ProdutoNome, m.ProdutoCategoria))
	}
	return &dto.MovimentacaoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovimentacaoResponse(m *entity.MovimentacaoEstoque, produtoNome, produtoCategoria string) *dto.MovimentacaoResponse {
	if m == nil {
		return nil
	}
	return &dto.MovimentacaoResponse{
		ID:               m.ID,
		ProdutoID:        m.ProdutoID,
		ProdutoNome:      produtoNome,
		ProdutoCategoria: produtoCategoria,
		Tipo:             m.Tipo,
		Quantidade:       m.Quantidade,
		Motivo:           m.Motivo,
		DataMovimentacao: m.DataMovimentacao,
		CreatedAt:        m.CreatedAt,
	}
}
