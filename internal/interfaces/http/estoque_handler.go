package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/application/estoque"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

// EstoqueHandler trata as requisições HTTP de movimentações de estoque (protegido).
type EstoqueHandler struct {
	uc *estoque.MovimentacaoUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.MovimentacaoUseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimentação de estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovimentacaoRequest  true  "produto_id, tipo (entrada|saida), quantidade, motivo"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/movimentacoes [post]
func (h *EstoqueHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegistrarMovimentacao(c.Context(), in)
	if err != nil {
		return movimentacaoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimentações de estoque
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        produto_id  query  string  false  "Filtrar por produto (UUID)"
// @Param        tipo        query  string  false  "Filtrar por tipo (entrada|saida)"
// @Param        limit       query  int     false  "Limite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Router       /api/estoque/movimentacoes [get]
func (h *EstoqueHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filtro := repository.MovimentacaoFiltro{
		ProdutoID: c.Query("produto_id"),
		Tipo:      c.Query("tipo"),
	}
	out, err := h.uc.ListarMovimentacoes(filtro, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar movimentação de estoque
// @Description  Reverte o efeito original sobre o estoque e aplica o novo, na mesma transação.
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da movimentação"
// @Param        body  body  dto.UpdateMovimentacaoRequest  true  "tipo, quantidade, motivo"
// @Success      200   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/movimentacoes/{id} [put]
func (h *EstoqueHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AtualizarMovimentacao(c.Context(), id, in)
	if err != nil {
		return movimentacaoError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir movimentação de estoque
// @Description  Reverte o efeito da movimentação sobre o estoque antes de excluir.
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da movimentação"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/estoque/movimentacoes/{id} [delete]
func (h *EstoqueHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.ExcluirMovimentacao(c.Context(), id); err != nil {
		return movimentacaoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func movimentacaoError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação ou produto não encontrado"})
	}
	if errors.Is(err, domain.ErrInsufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
