package vectorspace

import "sort"

// Keywords builds a TF-IDF space over texts and returns the topK terms by
// total weight across all documents. Ties keep first-appearance vocabulary
// order. Fewer than topK distinct terms yields a shorter list; an empty or
// token-free corpus yields an empty list.
func Keywords(tokenizer *Tokenizer, texts []string, topK int) []string {
	if topK <= 0 {
		return nil
	}

	space := Build(tokenizer, texts)
	vocab := space.Vocab()
	if len(vocab) == 0 {
		return nil
	}

	weights := make([]float64, len(vocab))
	for i := 0; i < space.Len(); i++ {
		for j, w := range space.Vector(i) {
			weights[j] += w
		}
	}

	order := make([]int, len(vocab))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]] > weights[order[b]]
	})

	if topK > len(order) {
		topK = len(order)
	}
	out := make([]string, topK)
	for i := 0; i < topK; i++ {
		out[i] = vocab[order[i]]
	}
	return out
}
