package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelmp/gestao-loja-api/internal/application/apptest"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/application/usecase"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/entity"
)

func novoProdutoUC() (*usecase.ProdutoUseCase, *apptest.ProdutoRepo, *apptest.MovRepo, *apptest.VendaRepo) {
	produtoRepo := apptest.NewProdutoRepo()
	movRepo := apptest.NewMovRepo(produtoRepo)
	vendaRepo := apptest.NewVendaRepo()
	return usecase.NewProdutoUseCase(produtoRepo, movRepo, vendaRepo), produtoRepo, movRepo, vendaRepo
}

func TestCreateProduto_EstoqueInicialZero(t *testing.T) {
	uc, _, _, _ := novoProdutoUC()

	out, err := uc.Create(dto.CreateProdutoRequest{
		Nome:       "Boné",
		PrecoCusto: decimal.RequireFromString("8.00"),
		PrecoVenda: decimal.RequireFromString("25.00"),
		Categoria:  "Acessórios",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 0, out.QuantidadeEstoque, "produto novo sempre nasce com estoque zero")
}

func TestCreateProduto_Validacoes(t *testing.T) {
	uc, _, _, _ := novoProdutoUC()

	_, err := uc.Create(dto.CreateProdutoRequest{Nome: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome em branco deve ser rejeitado")

	_, err = uc.Create(dto.CreateProdutoRequest{
		Nome:       "Boné",
		PrecoVenda: decimal.RequireFromString("-1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "preço negativo deve ser rejeitado")
}

func TestUpdateProduto_NaoAlteraEstoque(t *testing.T) {
	uc, produtoRepo, _, _ := novoProdutoUC()
	produtoRepo.Produtos["p1"] = &entity.Produto{
		ID: "p1", Nome: "Caderno", QuantidadeEstoque: 7,
		PrecoCusto: decimal.RequireFromString("5.00"),
		PrecoVenda: decimal.RequireFromString("12.00"),
	}

	nome := "Caderno Universitário"
	preco := decimal.RequireFromString("14.00")
	out, err := uc.Update("p1", dto.UpdateProdutoRequest{Nome: &nome, PrecoVenda: &preco})
	require.NoError(t, err)

	assert.Equal(t, "Caderno Universitário", out.Nome)
	assert.Equal(t, 7, produtoRepo.Produtos["p1"].QuantidadeEstoque,
		"atualização de cadastro nunca mexe no estoque")
}

func TestUpdateProduto_NaoEncontrado(t *testing.T) {
	uc, _, _, _ := novoProdutoUC()

	out, err := uc.Update("inexistente", dto.UpdateProdutoRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDeleteProduto_SemReferencias(t *testing.T) {
	uc, produtoRepo, _, _ := novoProdutoUC()
	produtoRepo.Produtos["p1"] = &entity.Produto{ID: "p1", Nome: "Caderno"}

	require.NoError(t, uc.Delete("p1"))
	assert.NotContains(t, produtoRepo.Produtos, "p1")
}

func TestDeleteProduto_RecusadoQuandoReferenciadoPorVenda(t *testing.T) {
	uc, produtoRepo, _, vendaRepo := novoProdutoUC()
	produtoRepo.Produtos["p1"] = &entity.Produto{ID: "p1", Nome: "Caderno"}
	require.NoError(t, vendaRepo.CreateItem(&entity.ItemVenda{
		ID: "i1", VendaID: "v1", ProdutoID: "p1", Quantidade: 1,
	}))

	err := uc.Delete("p1")

	assert.ErrorIs(t, err, domain.ErrProductReferenced)
	assert.Contains(t, err.Error(), "registros de vendas")
	assert.Contains(t, produtoRepo.Produtos, "p1", "o produto deve permanecer")
}

func TestDeleteProduto_RecusadoQuandoReferenciadoPorMovimentacao(t *testing.T) {
	uc, produtoRepo, movRepo, _ := novoProdutoUC()
	produtoRepo.Produtos["p1"] = &entity.Produto{ID: "p1", Nome: "Caderno"}
	require.NoError(t, movRepo.Create(&entity.MovimentacaoEstoque{
		ID: "m1", ProdutoID: "p1", Tipo: entity.MovimentacaoEntrada, Quantidade: 3,
	}))

	err := uc.Delete("p1")

	assert.ErrorIs(t, err, domain.ErrProductReferenced)
	assert.Contains(t, err.Error(), "movimentações de estoque")
}

func TestDeleteProduto_NaoEncontrado(t *testing.T) {
	uc, _, _, _ := novoProdutoUC()

	err := uc.Delete("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
