package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const shortDescriptionMaxLen = 180

var whitespacePattern = regexp.MustCompile(`\s+`)

// buildShortDescription derives the card summary for a listing: the per-gig
// and per-sale amounts (numeric first, text fallback) followed by the first
// sentence of the stripped description, joined with " — ".
func buildShortDescription(job JobRecord) string {
	parts := make([]string, 0, 3)

	if job.PerGigAmount != nil && *job.PerGigAmount > 0 {
		parts = append(parts, euro(*job.PerGigAmount)+" per gig")
	} else if job.PerGigAmountText != "" {
		parts = append(parts, job.PerGigAmountText)
	}

	if job.PerSaleAmount != nil && *job.PerSaleAmount > 0 {
		parts = append(parts, euro(*job.PerSaleAmount)+" per sale")
	} else if job.PerSaleAmountText != "" {
		parts = append(parts, job.PerSaleAmountText)
	}

	if desc := firstSentence(stripHTML(job.DescriptionHTML), shortDescriptionMaxLen); desc != "" {
		parts = append(parts, desc)
	}

	return strings.Join(parts, " — ")
}

func euro(amount float64) string {
	return "€" + strconv.FormatFloat(amount, 'f', -1, 64)
}

// stripHTML flattens markup to plain text with collapsed whitespace.
func stripHTML(markup string) string {
	if markup == "" {
		return ""
	}

	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(whitespacePattern.ReplaceAllString(b.String(), " "))
		case html.TextToken:
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		}
	}
}

// firstSentence cuts text at the first period when it falls within maxLen,
// otherwise truncates with an ellipsis.
func firstSentence(text string, maxLen int) string {
	if dot := strings.Index(text, "."); dot != -1 && dot < maxLen {
		return text[:dot+1]
	}
	runes := []rune(text)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return text
}
