package banners

import (
	"fmt"

	"github.com/common-fate/cfurl/internal/build"
)

func WithVersion() string {
	if build.IsDev() {
		return "cfurl version: dev (unreleased build)\n"
	}
	return fmt.Sprintf("cfurl version: %s (commit %s, built %s by %s)\n", build.Version, build.Commit, build.Date, build.BuiltBy)
}
