package vectorspace

// SpanishStopWords returns the default stop word set for review text.
func SpanishStopWords() map[string]struct{} {
	words := []string{
		"el", "la", "los", "las", "y", "de", "que", "en", "un", "una",
		"es", "muy", "por", "para", "con", "lo", "como", "al", "se",
		"del", "más", "menos", "su", "sus", "le", "les", "me", "mi",
		"te", "tu", "yo", "nos", "pero", "si", "porque", "esta", "este",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
