// Package cnj handles the unified lawsuit number format NNNNNNN-DD.AAAA.J.TR.OOOO.
package cnj

import (
	"errors"
	"fmt"
	"strings"
)

const digits = 20

var (
	ErrInvalidLength     = errors.New("cnj: number must have 20 digits")
	ErrInvalidCheckDigit = errors.New("cnj: check digits do not match")
)

// Number is a parsed CNJ lawsuit number.
type Number struct {
	Sequencial string // NNNNNNN
	Digito     string // DD
	Ano        string // AAAA
	Segmento   string // J
	Tribunal   string // TR
	Origem     string // OOOO
}

// String returns the number in the masked NNNNNNN-DD.AAAA.J.TR.OOOO form.
func (n Number) String() string {
	return fmt.Sprintf("%s-%s.%s.%s.%s.%s", n.Sequencial, n.Digito, n.Ano, n.Segmento, n.Tribunal, n.Origem)
}

// Digits returns the 20 bare digits.
func (n Number) Digits() string {
	return n.Sequencial + n.Digito + n.Ano + n.Segmento + n.Tribunal + n.Origem
}

// Normalize strips every non-digit character.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse normalizes s and splits it into segments. The check digits are validated.
func Parse(s string) (Number, error) {
	d := Normalize(s)
	if len(d) != digits {
		return Number{}, ErrInvalidLength
	}

	n := Number{
		Sequencial: d[0:7],
		Digito:     d[7:9],
		Ano:        d[9:13],
		Segmento:   d[13:14],
		Tribunal:   d[14:16],
		Origem:     d[16:20],
	}

	if CheckDigits(n.Sequencial, n.Ano, n.Segmento, n.Tribunal, n.Origem) != n.Digito {
		return Number{}, ErrInvalidCheckDigit
	}
	return n, nil
}

// Validate reports whether s is a well-formed CNJ number with correct check digits.
func Validate(s string) error {
	_, err := Parse(s)
	return err
}

// Format returns the masked form of s, or an error if s is not valid.
func Format(s string) (string, error) {
	n, err := Parse(s)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

// CheckDigits computes DD as 98 - (NNNNNNN AAAA J TR OOOO 00 mod 97).
func CheckDigits(sequencial, ano, segmento, tribunal, origem string) string {
	r := mod97(sequencial + ano + segmento + tribunal + origem + "00")
	return fmt.Sprintf("%02d", 98-r)
}

func mod97(s string) int {
	r := 0
	for _, c := range s {
		r = (r*10 + int(c-'0')) % 97
	}
	return r
}
