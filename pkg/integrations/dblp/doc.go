// Package dblp reads the DBLP computer science bibliography.
//
// Two pages are used:
//
//   - author search, {base}/search/author?q=<name>, parsed by [ParseSearch]
//     into the links the resolver chooses from
//   - person pages (the profile locator), parsed by [ParseProfile] into the
//     primary author and one record per publication entry
//
// [Client] fetches both through the shared integrations client, so responses
// are cached, retried, and paced. It satisfies [coauthor.Searcher] and
// [coauthor.Source].
//
// [coauthor.Searcher]: github.com/matzehuels/scholarnet/pkg/coauthor.Searcher
// [coauthor.Source]: github.com/matzehuels/scholarnet/pkg/coauthor.Source
package dblp
