package analyzing

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Cabeçalhos de seção que o modelo insiste em emitir mesmo quando a resposta
// deveria ser corrida; são removidos linha a linha
var bannedHeaderRes = []*regexp.Regexp{
	regexp.MustCompile(`^\s*resposta\s+direta\s*:`),
	regexp.MustCompile(`^\s*evid[eê]ncias\s*:`),
	regexp.MustCompile(`^\s*a[cç][oõ]es\s+recomendadas\s*:`),
	regexp.MustCompile(`^\s*riscos(/[oó]bserva[cç][oõ]es)?\s*:`),
	regexp.MustCompile(`^\s*pr[oó]ximos\s+passos\s*:`),
}

var (
	bulletRe        = regexp.MustCompile(`^\s*[-*•]\s+`)
	enumRe          = regexp.MustCompile(`^\s*\d+[.)\-]\s+`)
	multiNewlineRe  = regexp.MustCompile("\n{3,}")
	wordWrapRe      = regexp.MustCompile(`([\p{L}\p{N}_])\n([\p{L}\p{N}_])`)
	strayBackslash  = regexp.MustCompile(`\s*\\\s*`)
	multiSpaceRe    = regexp.MustCompile(`[ \t]{2,}`)
	spaceBeforePunc = regexp.MustCompile(`\s+([,.;:!?])`)
	spaceAfterOpen  = regexp.MustCompile(`\(\s+`)
	spaceBeforeClos = regexp.MustCompile(`\s+\)`)
	currencySpace   = regexp.MustCompile(`R\$\s+`)
	decimalComma    = regexp.MustCompile(`(\d)\s*,\s*(\d{1,2})`)
)

const paraMarker = "<<PARA>>"

// SanitizeAnalysis limpa o texto vindo do modelo: normaliza Unicode, remove
// cabeçalhos e marcadores de lista, desfaz quebras de linha no meio de
// palavras e corrige espaçamento em pontuação e moeda. Aplicar duas vezes
// produz o mesmo resultado
func SanitizeAnalysis(text string) string {
	if text == "" {
		return text
	}

	t := strings.ReplaceAll(text, "\r\n", "\n")
	t = strings.ReplaceAll(t, "\r", "\n")

	// Filtra caracteres de controle e normaliza o restante (NFKC), mantendo
	// quebras de linha, espaços e tabs
	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		if r == '\n' || r == ' ' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if unicode.In(r, unicode.C) {
			continue
		}
		b.WriteString(norm.NFKC.String(string(r)))
	}
	t = b.String()

	// Remove cabeçalhos de seção e marcadores de lista, linha a linha
	lines := strings.Split(t, "\n")
	kept := lines[:0]
	for _, line := range lines {
		lower := strings.ToLower(line)
		banned := false
		for _, re := range bannedHeaderRes {
			if re.MatchString(lower) {
				banned = true
				break
			}
		}
		if banned {
			continue
		}
		line = bulletRe.ReplaceAllString(line, "")
		line = enumRe.ReplaceAllString(line, "")
		kept = append(kept, line)
	}
	t = strings.Join(kept, "\n")

	t = multiNewlineRe.ReplaceAllString(t, "\n\n")
	t = strings.TrimSpace(t)
	t = strings.ReplaceAll(t, "\t", " ")

	// Parágrafos são preservados; quebras simples restantes viram espaço,
	// exceto as que cortam uma palavra ao meio, que são coladas
	t = strings.ReplaceAll(t, "\n\n", paraMarker)
	for {
		joined := wordWrapRe.ReplaceAllString(t, "$1$2")
		if joined == t {
			break
		}
		t = joined
	}
	t = strayBackslash.ReplaceAllString(t, "")
	t = strings.ReplaceAll(t, "\n", " ")
	t = strings.ReplaceAll(t, paraMarker, "\n\n")

	t = multiSpaceRe.ReplaceAllString(t, " ")
	t = spaceBeforePunc.ReplaceAllString(t, "$1")
	t = spaceAfterOpen.ReplaceAllString(t, "(")
	t = spaceBeforeClos.ReplaceAllString(t, ")")
	t = strings.ReplaceAll(t, "R $", "R$")
	t = currencySpace.ReplaceAllString(t, "R$ ")
	t = decimalComma.ReplaceAllString(t, "$1,$2")

	return strings.TrimSpace(t)
}
