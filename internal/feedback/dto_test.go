package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidarDadosVisitaAgendada(t *testing.T) {
	base := DadosVisitaAgendada{
		Data:           time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC),
		DuracaoMinutos: 60,
		EncarregadosID: []uint{1},
	}
	assert.NoError(t, base.Validar())

	semData := base
	semData.Data = time.Time{}
	assert.ErrorIs(t, semData.Validar(), ErrDadosInvalidos)

	duracaoZero := base
	duracaoZero.DuracaoMinutos = 0
	assert.ErrorIs(t, duracaoZero.Validar(), ErrDadosInvalidos)

	duracaoNegativa := base
	duracaoNegativa.DuracaoMinutos = -30
	assert.ErrorIs(t, duracaoNegativa.Validar(), ErrDadosInvalidos)

	semEncarregados := base
	semEncarregados.EncarregadosID = nil
	assert.ErrorIs(t, semEncarregados.Validar(), ErrDadosInvalidos)

	custoNegativo := base
	custo := -10.0
	custoNegativo.CustoReparo = &custo
	assert.ErrorIs(t, custoNegativo.Validar(), ErrDadosInvalidos)
}

func TestDecodificarDadosAusentes(t *testing.T) {
	var dados DadosFechado
	assert.ErrorIs(t, decodificarDados(nil, &dados), ErrDadosInvalidos)
	assert.ErrorIs(t, decodificarDados([]byte("{invalido"), &dados), ErrDadosInvalidos)
}

func TestNormalizarProblema(t *testing.T) {
	assert.Equal(t, "INFILTRACAO", NormalizarProblema("  infiltracao "))
	assert.Equal(t, "VAZAMENTO", NormalizarProblema("Vazamento"))

	longo := NormalizarProblema("problema hidraulico no banheiro da suite")
	assert.Len(t, []rune(longo), 20)
	assert.Equal(t, "PROBLEMA HIDRAULICO ", longo)
}
