package dto

import "time"

// RegisterMovimentacaoRequest body para POST /api/estoque/movimentacoes.
type RegisterMovimentacaoRequest struct {
	ProdutoID        string     `json:"produto_id" validate:"required"`
	Tipo             string     `json:"tipo" validate:"required,oneof=entrada saida"`
	Quantidade       int        `json:"quantidade" validate:"required,gt=0"`
	Motivo           string     `json:"motivo"`
	DataMovimentacao *time.Time `json:"data_movimentacao,omitempty"` // padrão: agora
}

// UpdateMovimentacaoRequest body para PUT /api/estoque/movimentacoes/:id.
// A edição é aplicada como reversão do efeito original + aplicação do novo.
type UpdateMovimentacaoRequest struct {
	Tipo       string `json:"tipo" validate:"required,oneof=entrada saida"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
	Motivo     string `json:"motivo"`
}

// MovimentacaoResponse saída de uma movimentação (com dados do produto).
type MovimentacaoResponse struct {
	ID               string    `json:"id"`
	ProdutoID        string    `json:"produto_id"`
	ProdutoNome      string    `json:"produto_nome,omitempty"`
	ProdutoCategoria string    `json:"produto_categoria,omitempty"`
	Tipo             string    `json:"tipo"`
	Quantidade       int       `json:"quantidade"`
	Motivo           string    `json:"motivo,omitempty"`
	DataMovimentacao time.Time `json:"data_movimentacao"`
	CreatedAt        time.Time `json:"created_at"`
}

// MovimentacaoListResponse lista paginada de movimentações.
type MovimentacaoListResponse struct {
	Items []MovimentacaoResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
