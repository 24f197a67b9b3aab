package domain

import "fmt"

// Classification is the three-valued result of scoring a review.
type Classification string

const (
	ClassificationPositive Classification = "positive"
	ClassificationNegative Classification = "negative"
	ClassificationNeutral  Classification = "neutral"
)

// Classifications returns every legal classification in a stable order.
func Classifications() []Classification {
	return []Classification{ClassificationPositive, ClassificationNegative, ClassificationNeutral}
}

func (c Classification) IsValid() bool {
	switch c {
	case ClassificationPositive, ClassificationNegative, ClassificationNeutral:
		return true
	default:
		return false
	}
}

func (c Classification) String() string {
	return string(c)
}

// ParseClassification maps a wire label back to a Classification.
func ParseClassification(s string) (Classification, error) {
	c := Classification(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidClassification, s)
	}
	return c, nil
}
