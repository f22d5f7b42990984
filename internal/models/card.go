package models

// Card is the view model for a single project in the rendered grid.
// Optional badges are controlled by the zero values: an empty Language or
// HomepageURL hides the element, a zero star or fork count hides the badge.
// Text fields carry the raw API values; escaping happens in the template.
type Card struct {
	Name        string
	Description string
	Language    string
	Stars       int
	Forks       int
	URL         string
	HomepageURL string

	// DelayMS staggers the card's entrance animation by its position index.
	DelayMS int
}
