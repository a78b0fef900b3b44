package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

// ProdutoUseCase casos de uso CRUD para produtos. O estoque nunca é alterado
// por aqui; só o motor de movimentações mexe em QuantidadeEstoque.
type ProdutoUseCase struct {
	repo      repository.ProdutoRepository
	movRepo   repository.MovimentacaoEstoqueRepository
	vendaRepo repository.VendaRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(
	repo repository.ProdutoRepository,
	movRepo repository.MovimentacaoEstoqueRepository,
	vendaRepo repository.VendaRepository,
) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, movRepo: movRepo, vendaRepo: vendaRepo}
}

// Create cria um novo produto com estoque zero.
func (uc *ProdutoUseCase) Create(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecoCusto.LessThan(decimal.Zero) || in.PrecoVenda.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	produto := &entity.Produto{
		ID:                uuid.New().String(),
		Nome:              in.Nome,
		PrecoCusto:        in.PrecoCusto,
		PrecoVenda:        in.PrecoVenda,
		Categoria:         in.Categoria,
		QuantidadeEstoque: 0,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// GetByID obtém um produto por ID.
func (uc *ProdutoUseCase) GetByID(id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	return toProdutoResponse(produto), nil
}

// Update atualiza nome, preços e categoria. Estoque fica de fora.
func (uc *ProdutoUseCase) Update(id string, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	if in.Nome != nil {
		if strings.TrimSpace(*in.Nome) == "" {
			return nil, domain.ErrInvalidInput
		}
		produto.Nome = *in.Nome
	}
	if in.PrecoCusto != nil {
		if in.PrecoCusto.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		produto.PrecoCusto = *in.PrecoCusto
	}
	if in.PrecoVenda != nil {
		if in.PrecoVenda.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		produto.PrecoVenda = *in.PrecoVenda
	}
	if in.Categoria != nil {
		produto.Categoria = *in.Categoria
	}
	produto.UpdatedAt = time.Now()
	if err := uc.repo.Update(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// List lista produtos ordenados por nome, com paginação.
func (uc *ProdutoUseCase) List(limit, offset int) (*dto.ProdutoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProdutoResponse(p))
	}
	return &dto.ProdutoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete exclui um produto, desde que nada o referencie. A pré-verificação de
// itens de venda e movimentações é advisory (melhora a mensagem); a constraint
// de chave estrangeira do banco é a verificação autoritativa e produz a mesma
// recusa quando outra escrita concorrente cria referências no meio do caminho.
func (uc *ProdutoUseCase) Delete(id string) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}

	itens, err := uc.vendaRepo.CountItensByProduto(id)
	if err != nil {
		return err
	}
	movs, err := uc.movRepo.CountByProduto(id)
	if err != nil {
		return err
	}
	if itens > 0 || movs > 0 {
		var vinculos []string
		if itens > 0 {
			vinculos = append(vinculos, "registros de vendas")
		}
		if movs > 0 {
			vinculos = append(vinculos, "movimentações de estoque")
		}
		return fmt.Errorf("%w: %s", domain.ErrProductReferenced, strings.Join(vinculos, ", "))
	}

	// O repositório traduz violação de FK (23503) em ErrProductReferenced.
	return uc.repo.Delete(id)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:                p.ID,
		Nome:              p.Nome,
		PrecoCusto:        p.PrecoCusto,
		PrecoVenda:        p.PrecoVenda,
		Categoria:         p.Categoria,
		QuantidadeEstoque: p.QuantidadeEstoque,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
