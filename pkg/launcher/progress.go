package launcher

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

type ProgressOpts struct {
	Writer  io.Writer
	Message string
	// Hold keeps the spinner on screen after a successful launch.
	Hold time.Duration
}

type progress struct {
	inner Launcher
	opts  ProgressOpts
}

// WithProgress shows a spinner while inner is launching.
// The spinner is cleared before Launch returns.
func WithProgress(inner Launcher, opts ProgressOpts) Launcher {
	return progress{inner: inner, opts: opts}
}

func (p progress) Launch(url string) error {
	si := p.newSpinner()
	si.Start()
	defer si.Stop()

	if err := p.inner.Launch(url); err != nil {
		return err
	}

	time.Sleep(p.opts.Hold)
	return nil
}

func (p progress) newSpinner() *spinner.Spinner {
	var opts []spinner.Option
	// the spinner only draws when its file is a terminal, so point it at the file we write to
	if f, ok := p.opts.Writer.(*os.File); ok {
		opts = append(opts, spinner.WithWriterFile(f))
	}
	si := spinner.New(spinner.CharSets[14], 80*time.Millisecond, opts...)
	si.Suffix = " " + p.opts.Message
	if p.opts.Writer != nil {
		si.Writer = p.opts.Writer
	}
	_ = si.Color("cyan")
	return si
}
