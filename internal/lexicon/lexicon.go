// Package lexicon classifies review text by counting hits against fixed
// word lists. Matching is lowercase substring containment; no stemming.
package lexicon

// Lexicon holds the positive and negative word lists used by the
// classifier. Words are expected to be lowercase.
type Lexicon struct {
	Positive []string
	Negative []string
}

// Spanish returns the default Spanish sentiment lexicon.
func Spanish() Lexicon {
	return Lexicon{
		Positive: []string{
			"bueno", "buenísimo", "genial", "excelente", "maravilloso",
			"increíble", "emocionante", "bonito", "hermoso", "interesante",
			"divertido", "fascinante", "romántico",
		},
		Negative: []string{
			"malo", "malísimo", "horrible", "terrible", "aburrido",
			"lento", "tedioso", "feo", "decepcionante", "confuso", "oscuro",
		},
	}
}
