// Package launcher hands URLs to a browser.
package launcher

// Launcher opens a URL in a browser.
//
// Launch returns once the browser has been asked to open the URL. It does not
// wait for the page to load.
type Launcher interface {
	Launch(url string) error
}

// Error is returned by a Launcher when the URL could not be handed to a browser.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
