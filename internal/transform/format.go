package transform

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/runes"
	texttransform "golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a property value as grouped US dollars, e.g.
// "$150,000.00". Non-finite input renders as zero.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return usdPrinter.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatFileSize renders a byte count in humanized SI units, e.g.
// "1.5 MB". Negative input renders as zero bytes.
func FormatFileSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// FormatPhone renders a ten-digit phone number as (XXX) XXX-XXXX. Input
// that does not contain exactly ten digits comes back unchanged.
func FormatPhone(s string) string {
	var digits []byte
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, byte(r))
		}
	}
	if len(digits) != 10 {
		return s
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

// diacriticStripper decomposes text and drops the combining marks, so
// "Déjà" folds to "Deja" before slugging.
var diacriticStripper = texttransform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify folds text to a lowercase hyphen-separated slug safe for
// storage keys and URLs. Runs of non-alphanumerics collapse to a single
// hyphen; there is no error path, worst case the slug is empty.
func Slugify(s string) string {
	folded, _, err := texttransform.String(diacriticStripper, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	hyphened := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphened = false
		default:
			if !hyphened && b.Len() > 0 {
				b.WriteByte('-')
				hyphened = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
