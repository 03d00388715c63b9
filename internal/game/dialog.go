package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

type entryResult struct {
	text string
	err  error
}

// askWish shows the wish entry dialog. Cancelling yields an empty text.
func askWish() entryResult {
	text, err := zenity.Entry(
		"Weave your words...",
		zenity.Title("What is your wish?"),
		zenity.OKLabel("Send"),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return entryResult{}
	}
	return entryResult{text: text, err: err}
}
