package dblp

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
)

var (
	selAuthorEntry = cascadia.MustCompile("li.entry.author")
	selLink        = cascadia.MustCompile("a[href]")
	selTitle       = cascadia.MustCompile("title")
	selEntry       = cascadia.MustCompile("li.entry")
	selAuthor      = cascadia.MustCompile(`span[itemprop="author"]`)
)

// DefaultPrimaryAuthor names the primary author of a page without a title.
const DefaultPrimaryAuthor = "Author"

// ParseError reports a page that does not have the expected DBLP markup.
type ParseError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "parse " + e.URL + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseSearch extracts links from an author search page. Relative hrefs are
// resolved against base, which may be nil.
func ParseSearch(r io.Reader, base *url.URL) (*coauthor.SearchResult, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, &ParseError{URL: urlString(base), Reason: "invalid HTML", Err: err}
	}

	res := &coauthor.SearchResult{}
	for _, li := range selAuthorEntry.MatchAll(doc) {
		if a := selLink.MatchFirst(li); a != nil {
			res.AuthorEntries = append(res.AuthorEntries, resolveHref(base, attr(a, "href")))
		}
	}
	for _, a := range selLink.MatchAll(doc) {
		res.Links = append(res.Links, resolveHref(base, attr(a, "href")))
	}
	return res, nil
}

// ParseProfile extracts the primary author and publication records from a
// person page.
//
// The primary author is the title text before "::" (a leading "dblp:" is
// dropped). Each li.entry is one record whose authors are the trimmed texts
// of its itemprop="author" spans, in order. A page with a title and no
// entries is a valid empty profile; a page with neither is rejected.
func ParseProfile(r io.Reader, locator string) (*coauthor.Profile, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, &ParseError{URL: locator, Reason: "invalid HTML", Err: err}
	}

	titleNode := selTitle.MatchFirst(doc)
	entries := selEntry.MatchAll(doc)
	if titleNode == nil && len(entries) == 0 {
		return nil, &ParseError{URL: locator, Reason: "no title and no publication entries"}
	}

	p := &coauthor.Profile{
		Locator:       locator,
		PrimaryAuthor: DefaultPrimaryAuthor,
		Records:       make([]coauthor.Record, 0, len(entries)),
	}
	if titleNode != nil {
		p.PrimaryAuthor = primaryFromTitle(text(titleNode))
	}

	for _, li := range entries {
		spans := selAuthor.MatchAll(li)
		rec := make(coauthor.Record, 0, len(spans))
		for _, s := range spans {
			rec = append(rec, strings.TrimSpace(text(s)))
		}
		p.Records = append(p.Records, rec)
	}
	return p, nil
}

func primaryFromTitle(title string) string {
	name, _, _ := strings.Cut(title, "::")
	name = strings.TrimSpace(name)
	if len(name) >= 5 && strings.EqualFold(name[:5], "dblp:") {
		name = strings.TrimSpace(name[5:])
	}
	return name
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func resolveHref(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func urlString(u *url.URL) string {
	if u == nil {
		return "<search>"
	}
	return fmt.Sprint(u)
}
