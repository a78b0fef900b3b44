package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/application/relatorios"
)

// RelatorioHandler trata os endpoints de relatórios (protegido).
type RelatorioHandler struct {
	uc *relatorios.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorios.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// GetMensal godoc
// @Summary      Relatório mensal do ano
// @Description  Sempre devolve 12 meses (Jan..Dez), com zeros nos meses sem registros.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        ano  query  int  false  "Ano do relatório (padrão: ano corrente)"
// @Success      200  {object}  dto.RelatorioAnualDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/mensal [get]
func (h *RelatorioHandler) GetMensal(c *fiber.Ctx) error {
	ano, err := anoParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ano inválido"})
	}
	out, err := h.uc.GerarRelatorioAnual(c.Context(), ano)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// anoParam lê ?ano= com o ano corrente como padrão.
func anoParam(c *fiber.Ctx) (int, error) {
	ano := c.QueryInt("ano", time.Now().Year())
	if ano < 2000 || ano > 2200 {
		return 0, fiber.ErrBadRequest
	}
	return ano, nil
}
