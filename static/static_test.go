package static

import (
	"io/fs"
	"testing"
)

func TestFSServesPageAssets(t *testing.T) {
	for _, name := range []string{"loader.js", "style.css"} {
		if _, err := fs.Stat(FS, name); err != nil {
			t.Errorf("Stat(%q) = %v, want nil error", name, err)
		}
	}
}
