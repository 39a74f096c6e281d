package dblp

import (
	"errors"
	"net/url"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
)

func openFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestParseSearch(t *testing.T) {
	base, _ := url.Parse("https://dblp.org/search/author?q=Zeshan+Khan")
	res, err := ParseSearch(openFixture(t, "search.html"), base)
	if err != nil {
		t.Fatalf("ParseSearch() error: %v", err)
	}

	wantEntries := []string{
		"https://dblp.org/pid/188/4811.html",
		"https://dblp.org/pid/210/0042.html",
		"https://dblp.org/pid/99/1234.html",
	}
	if !slices.Equal(res.AuthorEntries, wantEntries) {
		t.Errorf("AuthorEntries = %v, want %v", res.AuthorEntries, wantEntries)
	}
	if len(res.Links) != 6 {
		t.Errorf("Links = %v, want 6 links", res.Links)
	}
	if res.Links[0] != "https://dblp.org/" || res.Links[1] != "https://dblp.org/faq/" {
		t.Errorf("page links not in order or not resolved: %v", res.Links[:2])
	}
}

func TestParseSearchFeedsResolver(t *testing.T) {
	res, err := ParseSearch(openFixture(t, "search.html"), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := res.Candidates()
	if len(got) != 3 || got[0] != "https://dblp.org/pid/188/4811.html" {
		t.Errorf("Candidates() = %v", got)
	}
}

func TestParseSearchNoAuthorEntries(t *testing.T) {
	page := `<html><body><p>No matches</p><a href="/pid/5/5.html">someone</a></body></html>`
	res, err := ParseSearch(strings.NewReader(page), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.AuthorEntries) != 0 {
		t.Errorf("AuthorEntries = %v", res.AuthorEntries)
	}
	if !slices.Equal(res.Links, []string{"/pid/5/5.html"}) {
		t.Errorf("Links = %v", res.Links)
	}
}

func TestParseProfile(t *testing.T) {
	const loc = "https://dblp.org/pid/188/4811.html"
	p, err := ParseProfile(openFixture(t, "profile.html"), loc)
	if err != nil {
		t.Fatalf("ParseProfile() error: %v", err)
	}
	if p.Locator != loc {
		t.Errorf("Locator = %q", p.Locator)
	}
	if p.PrimaryAuthor != "Zeshan Khan" {
		t.Errorf("PrimaryAuthor = %q", p.PrimaryAuthor)
	}

	want := []coauthor.Record{
		{"Zeshan Khan", "Ada Lovelace"},
		{"Zeshan Khan", "Ada Lovelace", "Charles Babbage"},
		{},
	}
	if len(p.Records) != len(want) {
		t.Fatalf("got %d records, want %d", len(p.Records), len(want))
	}
	for i := range want {
		if !slices.Equal(p.Records[i], want[i]) {
			t.Errorf("record %d = %q, want %q", i, p.Records[i], want[i])
		}
	}
}

func TestParseProfileTitleForms(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Jane Doe :: dblp", "Jane Doe"},
		{"dblp: Jane Doe", "Jane Doe"},
		{"  Jane Doe  ", "Jane Doe"},
		{"DBLP: Jane Doe :: Computer Science Bibliography", "Jane Doe"},
	}
	for _, tt := range tests {
		page := "<html><head><title>" + tt.title + "</title></head><body></body></html>"
		p, err := ParseProfile(strings.NewReader(page), "x")
		if err != nil {
			t.Fatalf("title %q: %v", tt.title, err)
		}
		if p.PrimaryAuthor != tt.want {
			t.Errorf("title %q: PrimaryAuthor = %q, want %q", tt.title, p.PrimaryAuthor, tt.want)
		}
		if len(p.Records) != 0 {
			t.Errorf("title %q: records = %v", tt.title, p.Records)
		}
	}
}

func TestParseProfileWithoutTitle(t *testing.T) {
	page := `<ul><li class="entry"><span itemprop="author">A</span><span itemprop="author">B</span></li></ul>`
	p, err := ParseProfile(strings.NewReader(page), "x")
	if err != nil {
		t.Fatal(err)
	}
	if p.PrimaryAuthor != DefaultPrimaryAuthor {
		t.Errorf("PrimaryAuthor = %q, want %q", p.PrimaryAuthor, DefaultPrimaryAuthor)
	}
	if len(p.Records) != 1 || !slices.Equal(p.Records[0], coauthor.Record{"A", "B"}) {
		t.Errorf("Records = %v", p.Records)
	}
}

func TestParseProfileRejectsForeignPage(t *testing.T) {
	_, err := ParseProfile(strings.NewReader(`<p>hello</p>`), "https://example.org/")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.URL != "https://example.org/" {
		t.Errorf("ParseError.URL = %q", pe.URL)
	}
	if !strings.Contains(pe.Error(), "no title") {
		t.Errorf("Error() = %q", pe.Error())
	}
}
