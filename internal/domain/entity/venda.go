package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas.
var FormasPagamento = []string{
	"Dinheiro",
	"Cartão de Débito",
	"Cartão de Crédito",
	"PIX",
	"Transferência",
}

// FormaPagamentoValida informa se a forma de pagamento é uma das aceitas.
func FormaPagamentoValida(forma string) bool {
	for _, f := range FormasPagamento {
		if f == forma {
			return true
		}
	}
	return false
}

// Venda representa uma venda com seus itens.
// ValorTotal é sempre a soma dos subtotais dos itens.
type Venda struct {
	ID             string
	DataVenda      time.Time
	ValorTotal     decimal.Decimal
	FormaPagamento string
	CreatedAt      time.Time
	Itens          []ItemVenda
}

// ItemVenda representa uma linha de uma venda (produto + quantidade + preço).
// Imutável após a criação da venda.
type ItemVenda struct {
	ID            string
	VendaID       string
	ProdutoID     string
	ProdutoNome   string // preenchido em leituras com join; não persiste
	Quantidade    int
	PrecoUnitario decimal.Decimal
	Subtotal      decimal.Decimal // Quantidade × PrecoUnitario
}
