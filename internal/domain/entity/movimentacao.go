package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "entrada"
	MovimentacaoSaida   = "saida"
)

// MovimentacaoEstoque representa um movimento de estoque (entrada ou saída).
// O ledger de movimentações é a única fonte de alterações de estoque.
type MovimentacaoEstoque struct {
	ID               string
	ProdutoID        string
	Tipo             string // entrada | saida
	Quantidade       int    // sempre positivo; o sinal vem do Tipo
	Motivo           string // opcional: compra, venda, ajuste, perda...
	DataMovimentacao time.Time
	CreatedAt        time.Time
}

// Delta devolve o efeito da movimentação sobre o estoque (+Quantidade para
// entrada, -Quantidade para saída).
func (m *MovimentacaoEstoque) Delta() int {
	if m.Tipo == MovimentacaoSaida {
		return -m.Quantidade
	}
	return m.Quantidade
}
