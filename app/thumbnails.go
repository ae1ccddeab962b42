package app

import "context"

// ThumbnailRenderer turns an image URL into a block of terminal cells.
type ThumbnailRenderer interface {
	// Render never returns an empty string; failures yield a placeholder and
	// a non-nil error for logging.
	Render(ctx context.Context, url string, cols, rows int) (string, error)
}
