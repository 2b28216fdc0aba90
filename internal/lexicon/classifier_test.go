package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resenia/resenia-server/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(Spanish())

	tests := []struct {
		name  string
		text  string
		label domain.Sentiment
		score float64
	}{
		{
			name:  "all positive",
			text:  "Me encantó, genial y maravilloso",
			label: domain.SentimentPositive,
			score: 1.0,
		},
		{
			name:  "all negative",
			text:  "Fue aburrido y terrible",
			label: domain.SentimentNegative,
			score: -1.0,
		},
		{
			name:  "no lexicon words",
			text:  "Lo terminé ayer por la noche",
			label: domain.SentimentNeutral,
			score: 0,
		},
		{
			name:  "empty text",
			text:  "",
			label: domain.SentimentNeutral,
			score: 0,
		},
		{
			name:  "tie is neutral",
			text:  "genial pero aburrido",
			label: domain.SentimentNeutral,
			score: 0,
		},
		{
			name:  "mixed leaning positive",
			text:  "genial y hermoso aunque algo lento",
			label: domain.SentimentPositive,
			score: 1.0 / 3.0,
		},
		{
			name:  "uppercase input matches",
			text:  "EXCELENTE LIBRO",
			label: domain.SentimentPositive,
			score: 1.0,
		},
		{
			name:  "word inside a longer word still matches",
			text:  "una lectura interesantísima",
			label: domain.SentimentPositive,
			score: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			assert.Equal(t, tt.label, got.Label)
			assert.InDelta(t, tt.score, got.Score, 1e-9)
		})
	}
}

func TestClassifier_WordCountedOnce(t *testing.T) {
	c := NewClassifier(Spanish())

	// "genial" three times against one "aburrido" still counts as 1 vs 1.
	got := c.Classify("genial genial genial pero aburrido")
	assert.Equal(t, domain.SentimentNeutral, got.Label)
	assert.Zero(t, got.Score)
}

func TestClassifier_ScoreRange(t *testing.T) {
	c := NewClassifier(Spanish())

	texts := []string{
		"bueno malo genial terrible hermoso",
		"excelente",
		"horrible feo confuso",
		"nada que ver",
	}
	for _, text := range texts {
		got := c.Classify(text)
		assert.GreaterOrEqual(t, got.Score, -1.0)
		assert.LessOrEqual(t, got.Score, 1.0)
		switch got.Label {
		case domain.SentimentPositive:
			assert.Positive(t, got.Score)
		case domain.SentimentNegative:
			assert.Negative(t, got.Score)
		default:
			assert.Zero(t, got.Score)
		}
	}
}
