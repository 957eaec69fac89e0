package models

// Page is one rendered screen of a list, ready for the presentation layer.
type Page struct {
	Title        string `json:"title"`
	Body         string `json:"body"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Footer       string `json:"footer"`
	Color        int    `json:"color"`
}
