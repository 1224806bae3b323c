package feedback

import "errors"

// Erros de negócio do motor de transições. São devolvidos intactos ao handler,
// que os traduz em status HTTP; o motor nunca engole uma transição que falhou.
var (
	ErrResponsavelNaoEncontrado = errors.New("feedback ou morador responsável não encontrado")
	ErrInstaladorNaoEncontrado  = errors.New("instalador não encontrado")
	ErrVisitaNaoEncontrada      = errors.New("nenhuma visita vinculada ao feedback")
	ErrStatusInvalido           = errors.New("statusFlag inválido")
	ErrVisitaJaAgendada         = errors.New("feedback já possui visita agendada")
	ErrDadosInvalidos           = errors.New("dados da transição inválidos")
)
