package errors

import (
	"strings"
	"testing"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "Ada Lovelace", false},
		{"accented", "Émile Zola", false},
		{"locator", "https://dblp.org/pid/00/1.html", false},
		{"locator upper scheme", "HTTPS://dblp.org/pid/00/1.html", false},
		{"padded", "  Ada  ", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", MaxQueryLength+1), true},
		{"control char", "Ada\x00Lovelace", true},
		{"newline", "Ada\nLovelace", true},
		{"locator without host", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuery(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateQuery(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://dblp.org", false},
		{"http", "http://localhost:8080/pid/1", false},

		{"empty", "", true},
		{"ftp", "ftp://dblp.org", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "dblp.org/pid/1", true},
		{"no host", "http:///pid/1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		ext     string
		wantErr bool
	}{
		{"default", "research_network.html", ".html", false},
		{"nested", "out/graph.svg", ".svg", false},
		{"absolute", "/tmp/graph.json", ".json", false},
		{"any extension", "graph", "", false},
		{"extension case", "graph.HTML", ".html", false},

		{"empty", "", "", true},
		{"directory", "out/", "", true},
		{"wrong extension", "graph.png", ".html", true},
		{"control char", "gra\x01ph.html", ".html", true},
		{"too long", strings.Repeat("a", 5000), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path, tt.ext)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q, %q) error = %v, wantErr %v", tt.path, tt.ext, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) returned wrong error code: %v", tt.path, err)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"html", "json"}
	if err := ValidateFormat("json", allowed); err != nil {
		t.Errorf("ValidateFormat(json) error = %v", err)
	}
	err := ValidateFormat("gif", allowed)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(gif) error = %v, want INVALID_FORMAT", err)
	}
	if !strings.Contains(UserMessage(err), "html, json") {
		t.Errorf("message %q does not list valid formats", UserMessage(err))
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeAuthorNotFound,
		ErrCodeNetwork,
		ErrCodeParse,
		ErrCodeRateLimited,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
