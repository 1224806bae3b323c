package saude

// Classificação de risco do empreendimento
const (
	StatusOtimo = "ÓTIMO"
	StatusOK    = "OK"
	StatusRuim  = "RUIM"

	CorVerde    = "verde"
	CorAmarelo  = "amarelo"
	CorVermelho = "vermelho"
)

// Saude é o retrato derivado (não persistido) da saúde de um empreendimento.
type Saude struct {
	EmpreendimentoID  uint    `json:"empreendimentoId"`
	TotalItens        int     `json:"totalItens"`
	ItensComFeedback  int     `json:"itensComFeedback"`
	PercentualDefeito float64 `json:"percentualDefeito"`
	LimiteRisco       int     `json:"limiteRisco"`
	Status            string  `json:"status"`
	Cor               string  `json:"cor"`
}
