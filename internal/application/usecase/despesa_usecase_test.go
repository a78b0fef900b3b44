package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelmp/gestao-loja-api/internal/application/apptest"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/application/usecase"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
)

func TestCreateDespesa(t *testing.T) {
	repo := apptest.NewDespesaRepo()
	uc := usecase.NewDespesaUseCase(repo)

	data := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	out, err := uc.Create(dto.CreateDespesaRequest{
		Descricao:   "Aluguel do ponto",
		Valor:       decimal.RequireFromString("1200.00"),
		DataDespesa: &data,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Aluguel do ponto", out.Descricao)
	assert.True(t, out.DataDespesa.Equal(data))
	assert.Len(t, repo.Despesas, 1)
}

func TestCreateDespesa_Validacoes(t *testing.T) {
	uc := usecase.NewDespesaUseCase(apptest.NewDespesaRepo())

	_, err := uc.Create(dto.CreateDespesaRequest{Descricao: " ", Valor: decimal.RequireFromString("10.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descrição em branco deve ser rejeitada")

	_, err = uc.Create(dto.CreateDespesaRequest{Descricao: "Luz", Valor: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor zero deve ser rejeitado")

	_, err = uc.Create(dto.CreateDespesaRequest{Descricao: "Luz", Valor: decimal.RequireFromString("-5.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor negativo deve ser rejeitado")
}

func TestUpdateDespesa(t *testing.T) {
	repo := apptest.NewDespesaRepo()
	uc := usecase.NewDespesaUseCase(repo)

	criada, err := uc.Create(dto.CreateDespesaRequest{
		Descricao: "Internet",
		Valor:     decimal.RequireFromString("99.90"),
	})
	require.NoError(t, err)

	novoValor := decimal.RequireFromString("109.90")
	out, err := uc.Update(criada.ID, dto.UpdateDespesaRequest{Valor: &novoValor})
	require.NoError(t, err)

	assert.True(t, out.Valor.Equal(novoValor))
	assert.Equal(t, "Internet", out.Descricao, "campos não informados permanecem")
}

func TestDeleteDespesa(t *testing.T) {
	repo := apptest.NewDespesaRepo()
	uc := usecase.NewDespesaUseCase(repo)

	criada, err := uc.Create(dto.CreateDespesaRequest{
		Descricao: "Embalagens",
		Valor:     decimal.RequireFromString("45.00"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(criada.ID))
	assert.Empty(t, repo.Despesas)

	assert.ErrorIs(t, uc.Delete("inexistente"), domain.ErrNotFound)
}
