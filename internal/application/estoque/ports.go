package estoque

import (
	"context"

	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade entre o ledger de
// movimentações e a coluna de estoque dos produtos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoEstoqueRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
