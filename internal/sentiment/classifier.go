package sentiment

import (
	"strings"

	"github.com/pscheid92/reviewpulse/internal/domain"
)

// Match is a token that hit one of the lexicons.
type Match struct {
	Token    string                `json:"token"`
	Polarity domain.Classification `json:"polarity"`
}

// Score holds the lexicon hit counts for a piece of text.
type Score struct {
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
	Matches  []Match `json:"matches"`
}

// Classification applies the decision rule: more positive hits is positive,
// more negative hits is negative, anything else is neutral.
func (s Score) Classification() domain.Classification {
	switch {
	case s.Positive > s.Negative:
		return domain.ClassificationPositive
	case s.Negative > s.Positive:
		return domain.ClassificationNegative
	default:
		return domain.ClassificationNeutral
	}
}

// Classify returns the sentiment of text. It never fails; empty input is neutral.
func Classify(text string) domain.Classification {
	return ScoreText(text).Classification()
}

// ScoreText lowercases and tokenizes text and reports every lexicon hit in order.
func ScoreText(text string) Score {
	score := Score{Matches: []Match{}}
	for _, token := range Tokenize(strings.ToLower(text)) {
		if positiveLexicon.contains(token) {
			score.Positive++
			score.Matches = append(score.Matches, Match{Token: token, Polarity: domain.ClassificationPositive})
		}
		if negativeLexicon.contains(token) {
			score.Negative++
			score.Matches = append(score.Matches, Match{Token: token, Polarity: domain.ClassificationNegative})
		}
	}
	return score
}

// Tokenize splits text into maximal runs of ASCII letters, digits and underscores.
// Every other rune, including non-ASCII letters, separates tokens. Case is preserved.
func Tokenize(text string) []string {
	tokens := make([]string, 0)
	start := -1
	for i := 0; i < len(text); i++ {
		if isWordByte(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}
