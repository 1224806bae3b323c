package feedback

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MoradaViva/api-posvenda/internal/instalador"
	"github.com/MoradaViva/api-posvenda/internal/morador"
	"github.com/MoradaViva/api-posvenda/internal/visita"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:feedback_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&morador.Morador{},
		&instalador.Instalador{},
		&Feedback{},
		&visita.Visita{},
	))
	return db
}

type chamadaNotificacao struct {
	Nome       string
	Email      string
	Status     string
	FeedbackID uint
	Info       string
}

type notificadorMock struct {
	chamadas []chamadaNotificacao
	falhar   bool
}

func (n *notificadorMock) Enviar(nome, email, status string, feedbackID uint, info string) bool {
	n.chamadas = append(n.chamadas, chamadaNotificacao{nome, email, status, feedbackID, info})
	return !n.falhar
}

func novoServico(t *testing.T) (*Service, *gorm.DB, *notificadorMock) {
	db := abrirBanco(t)
	mock := &notificadorMock{}
	return NewService(db, mock), db, mock
}

func criarFeedbackTeste(t *testing.T, db *gorm.DB, status string) *Feedback {
	t.Helper()
	m := morador.Morador{Nome: "Ana Souza", Email: fmt.Sprintf("ana%d@example.com", atomic.AddInt64(&dbSeq, 1))}
	require.NoError(t, db.Create(&m).Error)

	f := Feedback{
		Problema:  "INFILTRACAO",
		Descricao: "Mancha de umidade na parede do quarto",
		Status:    status,
		MoradorID: m.ID,
		ItemID:    1,
	}
	require.NoError(t, db.Create(&f).Error)
	f.Morador = m
	return &f
}

func criarInstaladorTeste(t *testing.T, db *gorm.DB) *instalador.Instalador {
	t.Helper()
	i := instalador.Instalador{
		CPF:  fmt.Sprintf("%011d", atomic.AddInt64(&dbSeq, 1)),
		Nome: "João Pereira",
	}
	require.NoError(t, db.Create(&i).Error)
	return &i
}

func payloadVisita(t *testing.T, inst *instalador.Instalador, extras map[string]interface{}) AtualizarStatusRequest {
	t.Helper()
	dados := map[string]interface{}{
		"date":       time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC),
		"duration":   90,
		"foremen_id": []uint{inst.ID},
	}
	for k, v := range extras {
		dados[k] = v
	}
	raw, err := json.Marshal(dados)
	require.NoError(t, err)
	return AtualizarStatusRequest{StatusFlag: StatusVisitaAgendada, Data: raw}
}

func TestVisitaAgendadaCriaVisitaEAtualizaStatus(t *testing.T) {
	s, db, mock := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusEmAnalise)
	inst := criarInstaladorTeste(t, db)

	custo := 350.0
	req := payloadVisita(t, inst, map[string]interface{}{
		"repairCost":   custo,
		"id_installer": inst.ID,
	})

	msg, err := s.AtualizarStatus(fb.ID, req)
	require.NoError(t, err)
	assert.Contains(t, msg, "Visita")

	var atualizado Feedback
	require.NoError(t, db.First(&atualizado, fb.ID).Error)
	assert.Equal(t, StatusVisitaAgendada, atualizado.Status)
	require.NotNil(t, atualizado.CustoReparo)
	assert.Equal(t, custo, *atualizado.CustoReparo)
	require.NotNil(t, atualizado.InstaladorID)
	assert.Equal(t, inst.ID, *atualizado.InstaladorID)

	var visitas []visita.Visita
	require.NoError(t, db.Where("feedback_id = ?", fb.ID).Find(&visitas).Error)
	require.Len(t, visitas, 1)
	assert.Equal(t, 90, visitas[0].DuracaoMinutos)
	assert.False(t, visitas[0].Confirmada)

	require.Len(t, mock.chamadas, 1)
	assert.Equal(t, StatusVisitaAgendada, mock.chamadas[0].Status)
	assert.Contains(t, mock.chamadas[0].Info, "90 minutos")
}

func TestVisitaAgendadaInstaladorInexistente(t *testing.T) {
	s, db, mock := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusEmAnalise)
	inst := criarInstaladorTeste(t, db)

	req := payloadVisita(t, inst, map[string]interface{}{
		"id_installer": uint(9999),
	})

	_, err := s.AtualizarStatus(fb.ID, req)
	assert.ErrorIs(t, err, ErrInstaladorNaoEncontrado)

	// nenhuma visita pode ter sido criada
	var count int64
	require.NoError(t, db.Model(&visita.Visita{}).Where("feedback_id = ?", fb.ID).Count(&count).Error)
	assert.Zero(t, count)

	var atualizado Feedback
	require.NoError(t, db.First(&atualizado, fb.ID).Error)
	assert.Equal(t, StatusEmAnalise, atualizado.Status)
	assert.Empty(t, mock.chamadas)
}

func TestVisitaAgendadaEncarregadoInexistente(t *testing.T) {
	s, db, _ := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusEmAnalise)

	raw, _ := json.Marshal(map[string]interface{}{
		"date":       time.Now().Add(24 * time.Hour),
		"duration":   60,
		"foremen_id": []uint{12345},
	})
	_, err := s.AtualizarStatus(fb.ID, AtualizarStatusRequest{StatusFlag: StatusVisitaAgendada, Data: raw})
	assert.ErrorIs(t, err, ErrInstaladorNaoEncontrado)
}

func TestVisitaAgendadaDuplicada(t *testing.T) {
	s, db, _ := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusEmAnalise)
	inst := criarInstaladorTeste(t, db)

	_, err := s.AtualizarStatus(fb.ID, payloadVisita(t, inst, nil))
	require.NoError(t, err)

	_, err = s.AtualizarStatus(fb.ID, payloadVisita(t, inst, nil))
	assert.ErrorIs(t, err, ErrVisitaJaAgendada)

	// a primeira visita permanece única e intacta
	var visitas []visita.Visita
	require.NoError(t, db.Where("feedback_id = ?", fb.ID).Find(&visitas).Error)
	assert.Len(t, visitas, 1)
}

func TestAguardandoFeedbackConfirmaVisita(t *testing.T) {
	s, db, mock := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusEmAnalise)
	inst := criarInstaladorTeste(t, db)

	_, err := s.AtualizarStatus(fb.ID, payloadVisita(t, inst, nil))
	require.NoError(t, err)

	raw, _ := json.Marshal(map[string]interface{}{"confirm_visit": true})
	msg, err := s.AtualizarStatus(fb.ID, AtualizarStatusRequest{StatusFlag: StatusAguardandoFeedback, Data: raw})
	require.NoError(t, err)
	assert.Contains(t, msg, "aguardando")

	var v visita.Visita
	require.NoError(t, db.Where("feedback_id = ?", fb.ID).First(&v).Error)
	assert.True(t, v.Confirmada)

	var atualizado Feedback
	require.NoError(t, db.First(&atualizado, fb.ID).Error)
	assert.Equal(t, StatusAguardandoFeedback, atualizado.Status)
	assert.Len(t, mock.chamadas, 2)
}

func TestAguardandoFeedbackSemVisita(t *testing.T) {
	s, db, _ := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusEmAnalise)

	raw, _ := json.Marshal(map[string]interface{}{"confirm_visit": true})
	_, err := s.AtualizarStatus(fb.ID, AtualizarStatusRequest{StatusFlag: StatusAguardandoFeedback, Data: raw})
	assert.ErrorIs(t, err, ErrVisitaNaoEncontrada)

	var atualizado Feedback
	require.NoError(t, db.First(&atualizado, fb.ID).Error)
	assert.Equal(t, StatusEmAnalise, atualizado.Status)
}

func TestFechadoRegistraAvaliacaoEConclusao(t *testing.T) {
	s, db, mock := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusAguardandoFeedback)

	antes := time.Now()
	raw, _ := json.Marshal(map[string]interface{}{"liked": true, "comment": "ok"})
	msg, err := s.AtualizarStatus(fb.ID, AtualizarStatusRequest{StatusFlag: StatusFechado, Data: raw})
	require.NoError(t, err)
	assert.Contains(t, msg, "fechado")

	var atualizado Feedback
	require.NoError(t, db.First(&atualizado, fb.ID).Error)
	assert.Equal(t, StatusFechado, atualizado.Status)
	require.NotNil(t, atualizado.AvaliacaoPositiva)
	assert.True(t, *atualizado.AvaliacaoPositiva)
	require.NotNil(t, atualizado.ComentarioMorador)
	assert.Equal(t, "ok", *atualizado.ComentarioMorador)
	require.NotNil(t, atualizado.DataConclusao)
	assert.False(t, atualizado.DataConclusao.Before(antes.Truncate(time.Second)))

	require.Len(t, mock.chamadas, 1)
	assert.Equal(t, "ok", mock.chamadas[0].Info)
}

func TestEmAnaliseIdempotente(t *testing.T) {
	s, db, mock := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusAberto)

	for i := 0; i < 2; i++ {
		msg, err := s.AtualizarStatus(fb.ID, AtualizarStatusRequest{StatusFlag: StatusEmAnalise})
		require.NoError(t, err)
		assert.Contains(t, msg, "análise")

		var atualizado Feedback
		require.NoError(t, db.First(&atualizado, fb.ID).Error)
		assert.Equal(t, StatusEmAnalise, atualizado.Status)
	}

	// único efeito repetido são as duas notificações
	assert.Len(t, mock.chamadas, 2)
}

func TestEmAnaliseReabreFeedbackFechado(t *testing.T) {
	s, db, _ := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusAguardandoFeedback)

	raw, _ := json.Marshal(map[string]interface{}{"liked": false})
	_, err := s.AtualizarStatus(fb.ID, AtualizarStatusRequest{StatusFlag: StatusFechado, Data: raw})
	require.NoError(t, err)

	_, err = s.AtualizarStatus(fb.ID, AtualizarStatusRequest{StatusFlag: StatusEmAnalise})
	require.NoError(t, err)

	var atualizado Feedback
	require.NoError(t, db.First(&atualizado, fb.ID).Error)
	assert.Equal(t, StatusEmAnalise, atualizado.Status)
	// reabrir limpa a conclusão: DataConclusao só existe em FECHADO
	assert.Nil(t, atualizado.DataConclusao)
	assert.Nil(t, atualizado.AvaliacaoPositiva)
}

func TestStatusFlagDesconhecido(t *testing.T) {
	s, db, mock := novoServico(t)
	fb := criarFeedbackTeste(t, db, StatusAberto)

	_, err := s.AtualizarStatus(fb.ID, AtualizarStatusRequest{StatusFlag: "CANCELADO"})
	assert.ErrorIs(t, err, ErrStatusInvalido)

	var atualizado Feedback
	require.NoError(t, db.First(&atualizado, fb.ID).Error)
	assert.Equal(t, StatusAberto, atualizado.Status)
	assert.Empty(t, mock.chamadas)
}

func TestFeedbackInexistente(t *testing.T) {
	s, _, _ := novoServico(t)

	_, err := s.AtualizarStatus(9999, AtualizarStatusRequest{StatusFlag: StatusEmAnalise})
	assert.ErrorIs(t, err, ErrResponsavelNaoEncontrado)
}

func TestNotificacaoFalhaNaoReverteTransicao(t *testing.T) {
	s, db, mock := novoServico(t)
	mock.falhar = true
	fb := criarFeedbackTeste(t, db, StatusAberto)

	msg, err := s.AtualizarStatus(fb.ID, AtualizarStatusRequest{StatusFlag: StatusEmAnalise})
	require.NoError(t, err)
	assert.NotEmpty(t, msg)

	var atualizado Feedback
	require.NoError(t, db.First(&atualizado, fb.ID).Error)
	assert.Equal(t, StatusEmAnalise, atualizado.Status)
	assert.Len(t, mock.chamadas, 1)
}
