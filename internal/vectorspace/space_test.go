package vectorspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenizer() *Tokenizer {
	return NewTokenizer(SpanishStopWords())
}

func TestTokenizer_Tokenize(t *testing.T) {
	tok := newTestTokenizer()

	t.Run("lowercases and splits on punctuation", func(t *testing.T) {
		got := tok.Tokenize("Magia, Dragones... ¡y AVENTURAS!")
		assert.Equal(t, []string{"magia", "dragones", "aventuras"}, got)
	})

	t.Run("drops stop words and single characters", func(t *testing.T) {
		got := tok.Tokenize("el libro es muy bueno o no")
		assert.Equal(t, []string{"libro", "bueno", "no"}, got)
	})

	t.Run("keeps duplicates in order", func(t *testing.T) {
		got := tok.Tokenize("magia magia dragones magia")
		assert.Equal(t, []string{"magia", "magia", "dragones", "magia"}, got)
	})

	t.Run("decomposed accents match composed", func(t *testing.T) {
		// "á" written as 'a' + combining acute accent.
		got := tok.Tokenize("dragón")
		require.Len(t, got, 1)
		assert.Equal(t, tok.Tokenize("dragón"), got)
	})

	t.Run("digits survive", func(t *testing.T) {
		got := tok.Tokenize("1984 fue brutal")
		assert.Equal(t, []string{"1984", "fue", "brutal"}, got)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, tok.Tokenize(""))
		assert.Empty(t, tok.Tokenize("   ...   "))
	})
}

func TestBuild_Properties(t *testing.T) {
	tok := newTestTokenizer()
	docs := []string{
		"magia dragones aventuras",
		"aventuras espaciales naves",
		"historia romance magia",
	}
	space := Build(tok, docs)

	t.Run("vocab is first appearance order", func(t *testing.T) {
		assert.Equal(t, []string{
			"magia", "dragones", "aventuras",
			"espaciales", "naves", "historia", "romance",
		}, space.Vocab())
	})

	t.Run("rows are unit length", func(t *testing.T) {
		for i := 0; i < space.Len(); i++ {
			var sumSq float64
			for _, w := range space.Vector(i) {
				sumSq += w * w
			}
			assert.InDelta(t, 1.0, sumSq, 1e-9, "row %d", i)
		}
	})

	t.Run("self similarity is one", func(t *testing.T) {
		for i := 0; i < space.Len(); i++ {
			assert.InDelta(t, 1.0, space.Cosine(i, i), 1e-9)
		}
	})

	t.Run("cosine is symmetric", func(t *testing.T) {
		assert.InDelta(t, space.Cosine(0, 1), space.Cosine(1, 0), 1e-12)
	})

	t.Run("disjoint documents score zero", func(t *testing.T) {
		assert.Zero(t, space.Cosine(1, 2))
	})

	t.Run("deterministic across rebuilds", func(t *testing.T) {
		again := Build(tok, docs)
		assert.Equal(t, space.Vocab(), again.Vocab())
		for i := 0; i < space.Len(); i++ {
			assert.Equal(t, space.Vector(i), again.Vector(i))
		}
	})
}

func TestBuild_SharedTermRanking(t *testing.T) {
	tok := newTestTokenizer()
	// Documents 0 and 1 share "aventuras", which document 0 repeats;
	// 0 and 2 share "magia" once. Both overlaps must beat the disjoint
	// pair, and the heavier overlap must rank higher.
	space := Build(tok, []string{
		"magia dragones aventuras aventuras legendarias",
		"aventuras espaciales entre galaxias",
		"romance historia magia antigua",
	})

	simAdventure := space.Cosine(0, 1)
	simMagic := space.Cosine(0, 2)
	assert.Positive(t, simAdventure)
	assert.Positive(t, simMagic)
	assert.Greater(t, simAdventure, simMagic)
	assert.Zero(t, space.Cosine(1, 2))
}

func TestBuild_ZeroVectors(t *testing.T) {
	tok := newTestTokenizer()
	space := Build(tok, []string{"", "magia dragones", "el la de"})

	require.Equal(t, 3, space.Len())
	assert.Zero(t, space.Cosine(0, 1))
	assert.Zero(t, space.Cosine(2, 1))
	assert.Zero(t, space.Cosine(0, 2))
	assert.Zero(t, space.Cosine(0, 0))
	assert.False(t, math.IsNaN(space.Cosine(0, 0)))
}

func TestBuild_EmptyCorpus(t *testing.T) {
	space := Build(newTestTokenizer(), nil)
	assert.Zero(t, space.Len())
	assert.Empty(t, space.Vocab())
}

func TestBuild_SingleDocument(t *testing.T) {
	space := Build(newTestTokenizer(), []string{"magia dragones"})
	require.Equal(t, 1, space.Len())
	assert.InDelta(t, 1.0, space.Cosine(0, 0), 1e-9)
}

func TestKeywords(t *testing.T) {
	tok := newTestTokenizer()

	t.Run("repeated terms rank first", func(t *testing.T) {
		texts := []string{
			"magia magia dragones",
			"magia aventuras",
		}
		got := Keywords(tok, texts, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "magia", got[0])
	})

	t.Run("fewer terms than topK", func(t *testing.T) {
		got := Keywords(tok, []string{"magia dragones"}, 5)
		assert.Equal(t, []string{"magia", "dragones"}, got)
	})

	t.Run("ties keep vocabulary order", func(t *testing.T) {
		got := Keywords(tok, []string{"magia dragones aventuras"}, 3)
		assert.Equal(t, []string{"magia", "dragones", "aventuras"}, got)
	})

	t.Run("empty corpus", func(t *testing.T) {
		assert.Empty(t, Keywords(tok, nil, 5))
		assert.Empty(t, Keywords(tok, []string{"", "el la"}, 5))
	})

	t.Run("non positive topK", func(t *testing.T) {
		assert.Empty(t, Keywords(tok, []string{"magia"}, 0))
		assert.Empty(t, Keywords(tok, []string{"magia"}, -1))
	})
}
