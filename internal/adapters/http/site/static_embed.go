package site

import (
	"embed"
	"fmt"
)

//go:embed static/index.html
var staticFS embed.FS

// Index returns the embedded estimator page.
func Index() ([]byte, error) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServe, err)
	}
	return page, nil
}
