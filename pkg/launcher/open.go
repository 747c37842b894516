package launcher

import (
	"github.com/pkg/browser"
	"github.com/pkg/errors"
)

// Open asks the operating system to open a URL with the default handler.
// This is the same as running 'open https://dash.cloudflare.com'
// (or 'xdg-open' / 'rundll32 url.dll,FileProtocolHandler') in your own terminal.
type Open struct{}

func (l Open) Launch(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return &Error{Err: errors.Wrap(err, "system URL handler")}
	}
	return nil
}
