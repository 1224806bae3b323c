package saude

import (
	"errors"

	"github.com/MoradaViva/api-posvenda/internal/empreendimento"
	"gorm.io/gorm"
)

var ErrEmpreendimentoNaoEncontrado = errors.New("empreendimento não encontrado")

// faixa verde fixa: até 30% o empreendimento é sempre ÓTIMO, independente do
// limite de risco configurado
const limiteOtimo = 30

// Calculator deriva o retrato de saúde de um empreendimento a partir da sua
// árvore de itens. Só faz leitura.
type Calculator struct {
	DB              *gorm.DB
	Empreendimentos empreendimento.Repository
}

func NewCalculator(db *gorm.DB) *Calculator {
	return &Calculator{
		DB:              db,
		Empreendimentos: empreendimento.NewRepository(),
	}
}

// CalcularSaude conta, por item, se existe ao menos um feedback (indicador
// binário; a quantidade além do primeiro não pesa) e classifica o percentual
// resultante em três faixas.
func (c *Calculator) CalcularSaude(empreendimentoID uint) (*Saude, error) {
	e, err := c.Empreendimentos.BuscarArvore(c.DB, empreendimentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmpreendimentoNaoEncontrado
		}
		return nil, err
	}

	total := 0
	comFeedback := 0
	for _, p := range e.Predios {
		for _, u := range p.Unidades {
			for _, i := range u.Itens {
				total++
				if len(i.Feedbacks) > 0 {
					comFeedback++
				}
			}
		}
	}

	var percentual float64
	if total > 0 {
		percentual = float64(comFeedback) / float64(total) * 100
	}

	limite := empreendimento.LimiteRiscoPadrao
	if e.LimiteRisco != nil {
		limite = *e.LimiteRisco
	}

	status, cor := classificar(percentual, limite)

	return &Saude{
		EmpreendimentoID:  e.ID,
		TotalItens:        total,
		ItensComFeedback:  comFeedback,
		PercentualDefeito: percentual,
		LimiteRisco:       limite,
		Status:            status,
		Cor:               cor,
	}, nil
}

func classificar(percentual float64, limite int) (string, string) {
	switch {
	case percentual <= limiteOtimo:
		return StatusOtimo, CorVerde
	case percentual <= float64(limite):
		return StatusOK, CorAmarelo
	default:
		return StatusRuim, CorVermelho
	}
}
