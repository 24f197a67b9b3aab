package sentiment

var positiveWords = []string{
	"good",
	"great",
	"excellent",
	"amazing",
	"wonderful",
	"fantastic",
	"love",
	"enjoy",
	"like",
	"best",
}

var negativeWords = []string{
	"bad",
	"terrible",
	"awful",
	"horrible",
	"worst",
	"hate",
	"dislike",
	"poor",
	"disappointing",
	"boring",
}

var (
	positiveLexicon = newLexicon(positiveWords)
	negativeLexicon = newLexicon(negativeWords)
)

type lexicon map[string]struct{}

func newLexicon(words []string) lexicon {
	l := make(lexicon, len(words))
	for _, w := range words {
		l[w] = struct{}{}
	}
	return l
}

func (l lexicon) contains(token string) bool {
	_, ok := l[token]
	return ok
}

// PositiveWords returns a copy of the positive lexicon in declaration order.
func PositiveWords() []string {
	return append([]string(nil), positiveWords...)
}

// NegativeWords returns a copy of the negative lexicon in declaration order.
func NegativeWords() []string {
	return append([]string(nil), negativeWords...)
}
