package review

import "github.com/BruksfildServices01/pro-booking/internal/httperr"

const (
	MinRating = 1
	MaxRating = 5
)

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return httperr.Validation("invalid_rating")
	}
	return nil
}

// RatingSummary é recalculado a partir de todas as avaliações.
type RatingSummary struct {
	Average float64
	Total   int
}

// Summarize calcula a média simples de todas as notas.
func Summarize(ratings []int) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return RatingSummary{
		Average: float64(sum) / float64(len(ratings)),
		Total:   len(ratings),
	}
}
