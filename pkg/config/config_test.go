package config

import (
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/matzehuels/peermap/pkg/errors"
)

const sampleConfig = `
[inputs]
peering  = "exports/peering.json"
vpcs     = "exports/vpcs.json"
accounts = "accounts.yaml"

[filter]
accounts = ["111111111111"]
regions  = ["us-east-1", "eu-west-1"]

[output]
path    = "reports/peering.html"
formats = ["html", "json"]
title   = "Production peering"
height  = "900px"
`

func TestDecode(t *testing.T) {
	c, err := Decode(sampleConfig)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Inputs.Peering != "exports/peering.json" || c.Inputs.VPCs != "exports/vpcs.json" || c.Inputs.Accounts != "accounts.yaml" {
		t.Errorf("inputs = %+v", c.Inputs)
	}
	if len(c.Filter.Accounts) != 1 || len(c.Filter.Regions) != 2 {
		t.Errorf("filter = %+v", c.Filter)
	}
	if c.Output.Path != "reports/peering.html" || c.Output.Title != "Production peering" || c.Output.Height != "900px" {
		t.Errorf("output = %+v", c.Output)
	}
	if len(c.Output.Formats) != 2 || c.Output.Formats[1] != "json" {
		t.Errorf("formats = %v", c.Output.Formats)
	}
}

func TestDecodeEmpty(t *testing.T) {
	c, err := Decode("")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c.Inputs.Peering != "" || c.Output.Path != "" || c.Filter.Accounts != nil {
		t.Errorf("empty config = %+v", c)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[inputs\npeering = 1"},
		{"wrong type", "[output]\nformats = \"html\""},
		{"unknown key", "[output]\npaht = \"x.html\""},
		{"unknown table", "[server]\nport = 80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !perrors.Is(err, perrors.ErrCodeInvalidConfig) {
				t.Errorf("code = %s, want %s", perrors.GetCode(err), perrors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peermap.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Source != path {
		t.Errorf("Source = %q, want %q", c.Source, path)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !perrors.Is(err, perrors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	c, err := Find("")
	if err != nil {
		t.Fatalf("Find without file: %v", err)
	}
	if c.Source != "" {
		t.Errorf("Source = %q, want empty", c.Source)
	}

	if err := os.WriteFile(DefaultFile, []byte("[output]\ntitle = \"t\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Find("")
	if err != nil {
		t.Fatalf("Find with default file: %v", err)
	}
	if c.Output.Title != "t" || c.Source != DefaultFile {
		t.Errorf("Find() = %+v", c)
	}

	if _, err := Find("other.toml"); !perrors.Is(err, perrors.ErrCodeFileNotFound) {
		t.Errorf("Find(explicit missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
