package app

import "context"

// ShareOutcome reports how a share request was fulfilled.
type ShareOutcome int

const (
	ShareUnavailable ShareOutcome = iota
	// ShareNative means the link went to the platform share command.
	ShareNative
	// ShareCopied means the link was copied to the clipboard.
	ShareCopied
)

// Sharer hands a product link to the platform.
type Sharer interface {
	Share(ctx context.Context, title, url string) (ShareOutcome, error)
}

// Opener opens a URL with the platform default handler.
type Opener interface {
	Open(url string) error
}
