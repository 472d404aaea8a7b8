// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeadingLines = 2

	ArticleLines   = 6
	ArticleSpacing = 1

	ItemSafetyPadding = 1
)
