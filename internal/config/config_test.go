package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		content    string
		wantErr    bool
		wantHeader string
		wantFooter string
	}{
		{
			name:       "json config",
			file:       "config.json",
			content:    `{"header": "Summarize this:\n", "footer": "\nEnd of text."}`,
			wantHeader: "Summarize this:\n",
			wantFooter: "\nEnd of text.",
		},
		{
			name:       "yaml config",
			file:       "config.yaml",
			content:    "header: \"H:\"\nfooter: \":F\"\n",
			wantHeader: "H:",
			wantFooter: ":F",
		},
		{
			name:       "empty strings are valid",
			file:       "config.json",
			content:    `{"header": "", "footer": ""}`,
			wantHeader: "",
			wantFooter: "",
		},
		{
			name:    "missing header",
			file:    "config.json",
			content: `{"footer": "x"}`,
			wantErr: true,
		},
		{
			name:    "missing footer",
			file:    "config.yaml",
			content: "header: x\n",
			wantErr: true,
		},
		{
			name:    "malformed json",
			file:    "config.json",
			content: `{"header": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, tt.content)
			wrap, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if wrap.Header != tt.wantHeader {
				t.Errorf("Header = %q, want %q", wrap.Header, tt.wantHeader)
			}
			if wrap.Footer != tt.wantFooter {
				t.Errorf("Footer = %q, want %q", wrap.Footer, tt.wantFooter)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("nonexistent.json"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
