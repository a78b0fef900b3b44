package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

// DespesaUseCase casos de uso CRUD para despesas.
type DespesaUseCase struct {
	repo repository.DespesaRepository
}

// NewDespesaUseCase constrói o caso de uso.
func NewDespesaUseCase(repo repository.DespesaRepository) *DespesaUseCase {
	return &DespesaUseCase{repo: repo}
}

// Create cria uma despesa. Valor deve ser positivo.
func (uc *DespesaUseCase) Create(in dto.CreateDespesaRequest) (*dto.DespesaResponse, error) {
	if strings.TrimSpace(in.Descricao) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Valor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	data := now
	if in.DataDespesa != nil {
		data = *in.DataDespesa
	}
	despesa := &entity.Despesa{
		ID:          uuid.New().String(),
		Descricao:   in.Descricao,
		Valor:       in.Valor,
		DataDespesa: data,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(despesa); err != nil {
		return nil, err
	}
	return toDespesaResponse(despesa), nil
}

// GetByID obtém uma despesa por ID.
func (uc *DespesaUseCase) GetByID(id string) (*dto.DespesaResponse, error) {
	despesa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if despesa == nil {
		return nil, nil
	}
	return toDespesaResponse(despesa), nil
}

// Update atualiza uma despesa.
func (uc *DespesaUseCase) Update(id string, in dto.UpdateDespesaRequest) (*dto.DespesaResponse, error) {
	despesa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if despesa == nil {
		return nil, nil
	}
	if in.Descricao != nil {
		if strings.TrimSpace(*in.Descricao) == "" {
			return nil, domain.ErrInvalidInput
		}
		despesa.Descricao = *in.Descricao
	}
	if in.Valor != nil {
		if !in.Valor.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		despesa.Valor = *in.Valor
	}
	if in.DataDespesa != nil {
		despesa.DataDespesa = *in.DataDespesa
	}
	if err := uc.repo.Update(despesa); err != nil {
		return nil, err
	}
	return toDespesaResponse(despesa), nil
}

// List lista despesas, mais recentes primeiro.
func (uc *DespesaUseCase) List(limit, offset int) (*dto.DespesaListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DespesaResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDespesaResponse(d))
	}
	return &dto.DespesaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete exclui uma despesa por ID.
func (uc *DespesaUseCase) Delete(id string) error {
	despesa, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if despesa == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toDespesaResponse(d *entity.Despesa) *dto.DespesaResponse {
	if d == nil {
		return nil
	}
	return &dto.DespesaResponse{
		ID:          d.ID,
		Descricao:   d.Descricao,
		Valor:       d.Valor,
		DataDespesa: d.DataDespesa,
		CreatedAt:   d.CreatedAt,
	}
}
