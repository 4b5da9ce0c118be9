package intimacao

import (
	"fmt"
	"math"
)

// BadgeClasses returns the CSS utility classes for an urgency badge.
func BadgeClasses(u *Urgencia) string {
	if u == nil {
		return badgeNeutral
	}
	if c, ok := badgeClasses[*u]; ok {
		return c
	}
	return badgeNeutral
}

// Label returns the Portuguese badge text, e.g. "Alta · 5 dias úteis".
func Label(u *Urgencia, diasRestantes *int, vencida bool) string {
	if u == nil {
		return "Sem prazo"
	}

	if vencida {
		switch {
		case diasRestantes == nil:
			return "Vencida"
		case *diasRestantes == 0:
			return "Vence hoje"
		default:
			return "Vencida há " + diasUteis(-*diasRestantes)
		}
	}

	name := tierNames[*u]
	if name == "" {
		name = string(*u)
	}
	if diasRestantes == nil {
		return name
	}
	return fmt.Sprintf("%s · %s", name, diasUteis(*diasRestantes))
}

func diasUteis(n int) string {
	if n == 1 {
		return "1 dia útil"
	}
	return fmt.Sprintf("%d dias úteis", n)
}

// Progress returns the 0..100 share of the prazo already consumed.
func Progress(p ParsedIntimacao) int {
	if p.Vencida || p.Status == StatusFechado {
		return 100
	}
	if p.PrazoDias == nil || p.DiasRestantes == nil || *p.PrazoDias <= 0 {
		return 0
	}

	pct := float64(*p.PrazoDias-*p.DiasRestantes) / float64(*p.PrazoDias) * 100
	return int(math.Round(math.Max(0, math.Min(100, pct))))
}

// Severity orders urgency tiers: critica 4, alta 3, media 2, baixa 1, none 0.
func Severity(u *Urgencia) int {
	if u == nil {
		return 0
	}
	switch *u {
	case UrgenciaCritica:
		return 4
	case UrgenciaAlta:
		return 3
	case UrgenciaMedia:
		return 2
	case UrgenciaBaixa:
		return 1
	}
	return 0
}
