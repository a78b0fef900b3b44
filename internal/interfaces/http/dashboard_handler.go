package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rafaelmp/gestao-loja-api/internal/application/dto"
	"github.com/rafaelmp/gestao-loja-api/internal/application/relatorios"
)

// DashboardHandler trata o endpoint de resumo do dashboard (protegido).
type DashboardHandler struct {
	uc *relatorios.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *relatorios.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devolve o resumo financeiro do ano com o estoque total e as
// últimas movimentações.
// GET /api/dashboard
//
// Resposta: DashboardSummaryDTO (totais do ano, total_produtos_estoque,
// ultimas_movimentacoes[5], gerado_em). Aceita ?ano=; padrão é o ano corrente.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	ano, err := anoParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ano inválido"})
	}
	summary, err := h.uc.GetSummary(c.Context(), ano)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
