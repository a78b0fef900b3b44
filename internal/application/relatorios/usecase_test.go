package relatorios_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelmp/gestao-loja-api/internal/application/relatorios"
	"github.com/rafaelmp/gestao-loja-api/internal/domain/repository"
)

func dia(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 12, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAgregarMensal_AnoSemRegistrosDozeMesesZerados(t *testing.T) {
	meses := relatorios.AgregarMensal(2025, nil, nil, nil)

	require.Len(t, meses, 12, "o relatório sempre tem 12 meses")
	rotulos := []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
	for i, m := range meses {
		assert.Equal(t, rotulos[i], m.Mes)
		assert.True(t, m.Vendas.IsZero())
		assert.True(t, m.Custos.IsZero())
		assert.True(t, m.Despesas.IsZero())
		assert.True(t, m.Lucro.IsZero())
		assert.True(t, m.MargemBruta.IsZero(), "margem de mês sem vendas deve ser 0, nunca NaN")
	}
}

func TestAgregarMensal_AgrupaPorMesDoCalendario(t *testing.T) {
	vendas := []repository.VendaResumoRow{
		{DataVenda: dia(2025, time.March, 3), ValorTotal: dec("100.00")},
		{DataVenda: dia(2025, time.March, 20), ValorTotal: dec("50.00")},
		{DataVenda: dia(2025, time.October, 1), ValorTotal: dec("80.00")},
	}
	itens := []repository.ItemCustoRow{
		{DataVenda: dia(2025, time.March, 3), Quantidade: 2, PrecoCusto: dec("10.00")},
		{DataVenda: dia(2025, time.October, 1), Quantidade: 1, PrecoCusto: dec("30.00")},
	}
	despesas := []repository.DespesaResumoRow{
		{DataDespesa: dia(2025, time.March, 15), Valor: dec("40.00")},
	}

	meses := relatorios.AgregarMensal(2025, vendas, itens, despesas)

	marco := meses[2]
	assert.True(t, marco.Vendas.Equal(dec("150.00")), "março: vendas %s", marco.Vendas)
	assert.True(t, marco.Custos.Equal(dec("20.00")))
	assert.True(t, marco.Despesas.Equal(dec("40.00")))
	assert.True(t, marco.Lucro.Equal(dec("90.00")), "lucro = vendas - custos - despesas")

	outubro := meses[9]
	assert.True(t, outubro.Vendas.Equal(dec("80.00")))
	assert.True(t, outubro.Custos.Equal(dec("30.00")))
	assert.True(t, outubro.Lucro.Equal(dec("50.00")))

	// Meses sem registros permanecem zerados.
	assert.True(t, meses[0].Vendas.IsZero())
	assert.True(t, meses[11].Lucro.IsZero())
}

func TestAgregarMensal_IgnoraRegistrosDeOutroAno(t *testing.T) {
	vendas := []repository.VendaResumoRow{
		{DataVenda: dia(2024, time.December, 31), ValorTotal: dec("999.00")},
		{DataVenda: dia(2025, time.January, 1), ValorTotal: dec("10.00")},
	}

	meses := relatorios.AgregarMensal(2025, vendas, nil, nil)

	assert.True(t, meses[0].Vendas.Equal(dec("10.00")),
		"somente as vendas do ano pedido entram na agregação")
	assert.True(t, meses[11].Vendas.IsZero())
}

func TestAgregarMensal_MargemBruta(t *testing.T) {
	vendas := []repository.VendaResumoRow{
		{DataVenda: dia(2025, time.May, 5), ValorTotal: dec("200.00")},
	}
	itens := []repository.ItemCustoRow{
		{DataVenda: dia(2025, time.May, 5), Quantidade: 5, PrecoCusto: dec("10.00")},
	}

	meses := relatorios.AgregarMensal(2025, vendas, itens, nil)

	// (200 - 50) / 200 × 100 = 75
	assert.True(t, meses[4].MargemBruta.Equal(dec("75")),
		"margem bruta de maio deve ser 75%%, obtido: %s", meses[4].MargemBruta)
}

func TestAgregarMensal_LucroNegativoEMargemZeroSemVendas(t *testing.T) {
	despesas := []repository.DespesaResumoRow{
		{DataDespesa: dia(2025, time.July, 1), Valor: dec("120.00")},
	}

	meses := relatorios.AgregarMensal(2025, nil, nil, despesas)

	julho := meses[6]
	assert.True(t, julho.Lucro.Equal(dec("-120.00")), "despesas sem receita geram lucro negativo")
	assert.True(t, julho.MargemBruta.IsZero())
}

func TestTotaisAnuais_ReduzOsMeses(t *testing.T) {
	vendas := []repository.VendaResumoRow{
		{DataVenda: dia(2025, time.February, 1), ValorTotal: dec("100.00")},
		{DataVenda: dia(2025, time.August, 1), ValorTotal: dec("100.00")},
	}
	itens := []repository.ItemCustoRow{
		{DataVenda: dia(2025, time.February, 1), Quantidade: 4, PrecoCusto: dec("10.00")},
	}
	despesas := []repository.DespesaResumoRow{
		{DataDespesa: dia(2025, time.March, 1), Valor: dec("60.00")},
	}

	meses := relatorios.AgregarMensal(2025, vendas, itens, despesas)
	totais := relatorios.TotaisAnuais(meses)

	assert.True(t, totais.Vendas.Equal(dec("200.00")))
	assert.True(t, totais.Custos.Equal(dec("40.00")))
	assert.True(t, totais.Despesas.Equal(dec("60.00")))
	assert.True(t, totais.Lucro.Equal(dec("100.00")))
	// (200 - 40) / 200 × 100 = 80 ; 100 / 200 × 100 = 50
	assert.True(t, totais.MargemBruta.Equal(dec("80")))
	assert.True(t, totais.MargemLiquida.Equal(dec("50")))
}

func TestTotaisAnuais_AnoVazio(t *testing.T) {
	totais := relatorios.TotaisAnuais(relatorios.AgregarMensal(2025, nil, nil, nil))

	assert.True(t, totais.Vendas.IsZero())
	assert.True(t, totais.MargemBruta.IsZero())
	assert.True(t, totais.MargemLiquida.IsZero())
}
