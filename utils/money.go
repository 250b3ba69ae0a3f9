package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatBRL formats an amount in cents (centavos) as pt-BR currency text,
// like "R$ 6,50" or "R$ 1.234,56". Uses dot as thousands separator and
// comma as decimal separator.
func FormatBRL(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	reais := cents / 100
	centavos := cents % 100

	s := strconv.FormatInt(reais, 10)

	var b strings.Builder
	// Pre-allocate: digits + separators + prefix + decimals
	b.Grow(len(s) + len(s)/3 + 8)
	if neg {
		b.WriteString("-R$ ")
	} else {
		b.WriteString("R$ ")
	}

	if len(s) <= 3 {
		b.WriteString(s)
	} else {
		// Insert separators from the left.
		rem := len(s) % 3
		if rem == 0 {
			rem = 3
		}
		b.WriteString(s[:rem])
		for i := rem; i < len(s); i += 3 {
			b.WriteByte('.')
			b.WriteString(s[i : i+3])
		}
	}

	b.WriteByte(',')
	if centavos < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(centavos, 10))

	return b.String()
}

// CentsFromReais converts a reais amount (as found in the JSON data files)
// to cents, rounding to the nearest centavo. This is the single boundary
// where floating-point money enters the system.
func CentsFromReais(reais float64) int64 {
	return int64(math.Round(reais * 100))
}
