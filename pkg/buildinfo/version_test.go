package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	origV, origC := Version, Commit
	defer func() { Version, Commit = origV, origC }()

	tests := []struct {
		version, commit, want string
	}{
		{"dev", "none", "dev"},
		{"v1.2.3", "", "v1.2.3"},
		{"v1.2.3", "a1b2c3d4e5f6", "v1.2.3 (a1b2c3d)"},
		{"v1.2.3", "abc", "v1.2.3 (abc)"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(String(), "commit: ") {
		t.Errorf("String() = %q", String())
	}
}
