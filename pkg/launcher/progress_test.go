package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLauncher struct {
	err  error
	urls []string
}

func (m *mockLauncher) Launch(url string) error {
	m.urls = append(m.urls, url)
	return m.err
}

func TestProgress_spinnerUsesWriterFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "progress"))
	require.NoError(t, err)
	defer f.Close()

	si := progress{opts: ProgressOpts{Writer: f}}.newSpinner()
	assert.Same(t, f, si.WriterFile)
}

func TestProgress_Launch(t *testing.T) {
	// a regular file is not a terminal, so the spinner never draws
	f, err := os.Create(filepath.Join(t.TempDir(), "progress"))
	require.NoError(t, err)
	defer f.Close()

	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "ok"},
		{name: "launch_error_is_returned", err: &Error{Err: errors.New("no handler")}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockLauncher{err: tt.err}
			err := WithProgress(inner, ProgressOpts{Writer: f, Message: "opening"}).Launch("https://dash.cloudflare.com")
			if tt.wantErr {
				var launchErr *Error
				assert.ErrorAs(t, err, &launchErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, []string{"https://dash.cloudflare.com"}, inner.urls)
		})
	}

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
