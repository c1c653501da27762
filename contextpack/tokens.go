package contextpack

import "strings"

// charsPerToken is the fixed English-text heuristic used throughout the
// packer. It is not a real tokenizer; budgets carry a reserve margin to absorb
// the error.
const charsPerToken = 4

// TruncationMarker is appended to every truncated file.
const TruncationMarker = "\n\n[... content truncated ...]"

// EstimateTokens estimates the token count of content, rounding up.
func EstimateTokens(content string) int {
	return (len(content) + charsPerToken - 1) / charsPerToken
}

// TruncateToTokens cuts content down to approximately maxTokens. If the
// content already fits it is returned unchanged. The cut prefers the nearest
// newline boundary when one falls within the last 20% of the target length,
// so files are not chopped mid-line unless the alternative loses too much.
func TruncateToTokens(content string, maxTokens int) string {
	if EstimateTokens(content) <= maxTokens {
		return content
	}

	targetLen := maxTokens * charsPerToken
	if targetLen < 0 {
		targetLen = 0
	}
	if targetLen > len(content) {
		targetLen = len(content)
	}

	cut := content[:targetLen]
	if idx := strings.LastIndexByte(cut, '\n'); idx > int(float64(targetLen)*0.8) {
		cut = cut[:idx]
	}
	return cut + TruncationMarker
}
