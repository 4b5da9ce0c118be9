package intimacao

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"legal-office-management/internal/model"
	"legal-office-management/pkg/datemath"
)

type parser struct {
	dates         *datemath.Parser
	dataInicialRe *regexp.Regexp
	dataFinalRe   *regexp.Regexp
	prazoRe       *regexp.Regexp
	statusRe      *regexp.Regexp
}

// New creates a Parser that resolves dates and business days in the timezone of dates.
func New(dates *datemath.Parser) Parser {
	return &parser{
		dates:         dates,
		dataInicialRe: regexp.MustCompile(DataInicialPattern),
		dataFinalRe:   regexp.MustCompile(DataFinalPattern),
		prazoRe:       regexp.MustCompile(PrazoPattern),
		statusRe:      regexp.MustCompile(StatusPattern),
	}
}

func (p *parser) Parse(descricao string, now time.Time) ParsedIntimacao {
	out := ParsedIntimacao{Status: StatusAberto}
	if strings.TrimSpace(descricao) == "" {
		return out
	}

	out.DataInicial = p.matchDate(p.dataInicialRe, descricao)
	out.DataFinal = p.matchDate(p.dataFinalRe, descricao)
	out.PrazoDias = p.matchPrazo(descricao)
	out.StatusCodigo = p.matchStatus(descricao)

	if out.StatusCodigo != nil && IsClosureCode(*out.StatusCodigo) {
		out.Status = StatusFechado
	}

	// Explicit "Prazo: N dias" wins over the span between the two dates.
	if out.PrazoDias == nil && out.DataInicial != nil && out.DataFinal != nil {
		if span := p.dates.CalendarSpanInclusive(*out.DataInicial, *out.DataFinal); span >= 1 {
			out.PrazoDias = &span
		}
	}

	if out.DataFinal != nil {
		dias := p.dates.BusinessDaysBetween(now, *out.DataFinal)
		out.DiasRestantes = &dias
		out.Vencida = dias <= 0
		if out.Status == StatusAberto {
			u := Classify(dias, out.Vencida)
			out.Urgencia = &u
		}
	}

	return out
}

func (p *parser) ParsePtr(descricao *string, now time.Time) ParsedIntimacao {
	if descricao == nil {
		return p.Parse("", now)
	}
	return p.Parse(*descricao, now)
}

func (p *parser) Evaluate(descricao *string, now time.Time) Evaluation {
	parsed := p.ParsePtr(descricao, now)
	return Evaluation{
		ParsedIntimacao: parsed,
		Progress:        Progress(parsed),
		BadgeClasses:    BadgeClasses(parsed.Urgencia),
		Label:           Label(parsed.Urgencia, parsed.DiasRestantes, parsed.Vencida),
	}
}

func (p *parser) CountUrgentes(andamentos []model.Andamento, now time.Time) int {
	count := 0
	for _, a := range andamentos {
		if a.Lida {
			continue
		}
		parsed := p.ParsePtr(a.Descricao, now)
		if parsed.Status != StatusAberto || parsed.Urgencia == nil {
			continue
		}
		if *parsed.Urgencia == UrgenciaCritica || *parsed.Urgencia == UrgenciaAlta {
			count++
		}
	}
	return count
}

// matchDate returns the first date captured by re, or nil when absent or invalid.
func (p *parser) matchDate(re *regexp.Regexp, text string) *time.Time {
	m := re.FindStringSubmatch(text)
	if len(m) != 2 {
		return nil
	}
	t, ok := p.dates.ParseBR(m[1])
	if !ok {
		return nil
	}
	return &t
}

func (p *parser) matchPrazo(text string) *int {
	m := p.prazoRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

// matchStatus returns the first closure code among the status markers, or the
// first marker's code when none closes the entry.
func (p *parser) matchStatus(text string) *string {
	matches := p.statusRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	code := matches[0][1]
	for _, m := range matches {
		if IsClosureCode(m[1]) {
			code = m[1]
			break
		}
	}
	code = strings.ToUpper(code)
	return &code
}

var unaccent = strings.NewReplacer(
	"Á", "A", "À", "A", "Â", "A", "Ã", "A",
	"É", "E", "Ê", "E",
	"Í", "I",
	"Ó", "O", "Ô", "O", "Õ", "O",
	"Ú", "U", "Ü", "U",
	"Ç", "C",
)

// IsClosureCode reports whether code (any case, accents optional) closes an intimação.
func IsClosureCode(code string) bool {
	_, ok := closureCodes[unaccent.Replace(strings.ToUpper(strings.TrimSpace(code)))]
	return ok
}

// Classify maps business days left to an urgency tier.
func Classify(diasRestantes int, vencida bool) Urgencia {
	switch {
	case vencida, diasRestantes <= limiteCritica:
		return UrgenciaCritica
	case diasRestantes <= limiteAlta:
		return UrgenciaAlta
	case diasRestantes <= limiteMedia:
		return UrgenciaMedia
	default:
		return UrgenciaBaixa
	}
}
