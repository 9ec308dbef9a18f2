package revlens

// SelectorConfig holds the ordered selector lists the pipeline queries.
// Review selectors are all evaluated and their matches unioned; title
// selectors short-circuit on the first non-empty match. The lists are
// injectable configuration, loaded at startup (see the yaml package), so
// new site structures can be added without touching pipeline code.
type SelectorConfig struct {
	ReviewSelectors []string `json:"reviewSelectors" yaml:"review_selectors"`
	TitleSelectors  []string `json:"titleSelectors" yaml:"title_selectors"`
}

// Validate returns an error if either selector list is empty.
func (c *SelectorConfig) Validate() error {
	if len(c.ReviewSelectors) == 0 {
		return Errorf(EINVALID, "at least one review selector required")
	}
	if len(c.TitleSelectors) == 0 {
		return Errorf(EINVALID, "at least one title selector required")
	}
	return nil
}

// DefaultSelectorConfig returns the selector lists shipped with the tool.
// They target the large marketplaces' review markup plus schema.org
// fallbacks. Site-specific additions belong in a YAML config file, not here.
func DefaultSelectorConfig() *SelectorConfig {
	return &SelectorConfig{
		ReviewSelectors: []string{
			`[data-hook="review-body"] span`,
			`[data-hook="review-collapsed"] span`,
			`.review-text-content span`,
			`.review-text`,
			`[data-testid="review-text"]`,
			`[itemprop="reviewBody"]`,
			`.user-review .review-content`,
		},
		TitleSelectors: []string{
			`#productTitle`,
			`#title`,
			`h1[itemprop="name"]`,
			`h1.product-title`,
			`h1`,
		},
	}
}
