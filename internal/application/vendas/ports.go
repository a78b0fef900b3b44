package vendas

import (
	"context"

	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

// VendaTxRunner executa uma função dentro de uma transação de BD com os
// repositórios de venda e de estoque atados à mesma tx. Venda, itens, saídas
// de estoque e novo saldo são gravados atomicamente: qualquer falha desfaz tudo.
type VendaTxRunner interface {
	RunVenda(ctx context.Context, fn func(
		movRepo repository.MovimentacaoEstoqueRepository,
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error) error
}
