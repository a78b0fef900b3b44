package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/application/usecase"
	"github.com/rafaelmp/gestao-loja-api/internal/domain"
)

// DespesaHandler trata as requisições HTTP de despesas (protegido).
type DespesaHandler struct {
	uc *usecase.DespesaUseCase
}

// NewDespesaHandler constrói o handler.
func NewDespesaHandler(uc *usecase.DespesaUseCase) *DespesaHandler {
	return &DespesaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar despesa
// @Tags         despesas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDespesaRequest  true  "descricao, valor, data_despesa"
// @Success      201   {object}  dto.DespesaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/despesas [post]
func (h *DespesaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDespesaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter despesa por ID
// @Tags         despesas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da despesa"
// @Success      200  {object}  dto.DespesaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/despesas/{id} [get]
func (h *DespesaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "despesa não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar despesas
// @Tags         despesas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.DespesaListResponse
// @Router       /api/despesas [get]
func (h *DespesaHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar despesa
// @Tags         despesas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da despesa"
// @Param        body  body  dto.UpdateDespesaRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.DespesaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/despesas/{id} [put]
func (h *DespesaHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateDespesaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "despesa não encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir despesa
// @Tags         despesas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da despesa"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/despesas/{id} [delete]
func (h *DespesaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "despesa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
