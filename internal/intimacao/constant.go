package intimacao

const (
	StatusAberto  Status = "ABERTO"
	StatusFechado Status = "FECHADO"

	UrgenciaCritica Urgencia = "critica"
	UrgenciaAlta    Urgencia = "alta"
	UrgenciaMedia   Urgencia = "media"
	UrgenciaBaixa   Urgencia = "baixa"
)

// Upper bounds (inclusive) of business days left per tier.
const (
	limiteCritica = 3
	limiteAlta    = 7
	limiteMedia   = 15
)

const (
	// Example: "Data Inicial: 01/03/2024", "data de início - 2024-03-01"
	dateToken = `(\d{4}-\d{2}-\d{2}|\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4})`

	DataInicialPattern = `(?i)data\s+(?:inicial|de\s+in[ií]cio)\s*[:\-]?\s*` + dateToken
	DataFinalPattern   = `(?i)(?:data\s+final|prazo\s+final|data\s+de\s+vencimento|vencimento)\s*[:\-]?\s*` + dateToken

	// Example: "Prazo: 15 dias", "prazo de 5 (cinco) dias úteis", "prazo legal de 15 dias"
	PrazoPattern = `(?i)\bprazo(?:\s+\p{L}+)?(?:\s+de)?\s*[:\-]?\s*(\d{1,4})\s*(?:\([^)]*\)\s*)?dia(?:s|\(s\))?(?:\s+([uú]teis|corridos))?`

	// Example: "Status: CUMPRIDO", "Situação - arquivado". The separator is required so
	// prose such as "o status do cumprimento" is not read as a code.
	StatusPattern = `(?i)\b(?:status|situa[cç][aã]o)\s*[:\-]\s*([\p{L}\p{N}_]+)`
)

// closureCodes are status codes (upper case, unaccented) that close an intimação.
var closureCodes = map[string]struct{}{
	"FECHADO": {}, "FECHADA": {},
	"CUMPRIDO": {}, "CUMPRIDA": {},
	"ENCERRADO": {}, "ENCERRADA": {},
	"CONCLUIDO": {}, "CONCLUIDA": {},
	"ARQUIVADO": {}, "ARQUIVADA": {},
	"BAIXADO": {}, "BAIXADA": {},
	"RESPONDIDO": {}, "RESPONDIDA": {},
	"CANCELADO": {}, "CANCELADA": {},
	"FINALIZADO": {}, "FINALIZADA": {},
}

var badgeClasses = map[Urgencia]string{
	UrgenciaCritica: "bg-red-100 text-red-800 border-red-200",
	UrgenciaAlta:    "bg-orange-100 text-orange-800 border-orange-200",
	UrgenciaMedia:   "bg-yellow-100 text-yellow-800 border-yellow-200",
	UrgenciaBaixa:   "bg-green-100 text-green-800 border-green-200",
}

const badgeNeutral = "bg-gray-100 text-gray-600 border-gray-200"

var tierNames = map[Urgencia]string{
	UrgenciaCritica: "Crítica",
	UrgenciaAlta:    "Alta",
	UrgenciaMedia:   "Média",
	UrgenciaBaixa:   "Baixa",
}
