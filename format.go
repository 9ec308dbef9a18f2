package revlens

import "strings"

// FormatReviews formats reviews as a bullet list for model prompts.
// Each review occupies one line prefixed with "- ".
func FormatReviews(reviews []string) string {
	if len(reviews) == 0 {
		return ""
	}

	parts := make([]string, 0, len(reviews))
	for _, r := range reviews {
		parts = append(parts, "- "+r)
	}

	return strings.Join(parts, "\n")
}
