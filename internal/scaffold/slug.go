package scaffold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// charMap spells out letters that do not decompose into ASCII plus marks,
// and symbols that carry meaning in a name.
var charMap = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'Æ': "AE", 'æ': "ae",
	'Œ': "OE", 'œ': "oe",
	'Ø': "O", 'ø': "o",
	'Ł': "L", 'ł': "l",
	'Đ': "D", 'đ': "d",
	'Ð': "D", 'ð': "d",
	'Þ': "TH", 'þ': "th",
	'Ħ': "H", 'ħ': "h",
	'Ŧ': "T", 'ŧ': "t",
	'ı': "i",
	'ĸ': "k",
	'Ŋ': "N", 'ŋ': "n",
	'ſ': "s",
	'&': "and",
	'|': "or",
	'<': "less",
	'>': "greater",
	'$': "dollar",
	'%': "percent",
	'¢': "cent",
	'£': "pound",
	'€': "euro",
	'¥': "yen",
	'©': "c",
	'®': "r",
	'™': "tm",
	'∞': "infinity",
	'♥': "love",
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a display name into a lower-case package name. Letters are
// transliterated to ASCII, runs of whitespace and hyphens become a single
// "-", and everything else, underscores included, is dropped.
func Slugify(name string) string {
	var mapped strings.Builder
	for _, r := range norm.NFC.String(name) {
		if s, ok := charMap[r]; ok {
			mapped.WriteString(s)
			continue
		}
		mapped.WriteRune(r)
	}

	plain, _, err := transform.String(stripMarks, mapped.String())
	if err != nil {
		plain = mapped.String()
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
			pendingSep = true
		}
	}
	return b.String()
}
