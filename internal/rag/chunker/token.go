package chunker

// EstimateTokens gives a rough token count using the ~4 chars/token
// heuristic. Exact tokenization is not required for chunking; the estimate
// only has to be cheap and monotonic.
func EstimateTokens(text string) int {
	return len(text) / 4
}
