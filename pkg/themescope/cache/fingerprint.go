package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/proplens/themescope/pkg/themescope/corpus"
)

// Fingerprinter derives a stable content fingerprint from a corpus. The
// encoding covers each account's username, post count and a truncated
// sample of its first posts rather than the full content: two corpora
// differing only outside the sample window collide. That precision loss is
// the accepted price for hashing large corpora cheaply, which is why the
// window is configuration instead of a hidden constant.
type Fingerprinter struct {
	// SamplePosts is how many leading posts per account enter the hash.
	SamplePosts int
	// CaptionChars is how many leading caption runes per sampled post
	// enter the hash.
	CaptionChars int
}

// Fingerprint returns a hex digest identifying the corpus sample.
func (f Fingerprinter) Fingerprint(data corpus.Corpus) string {
	h := md5.New()
	for _, acct := range data {
		fmt.Fprintf(h, "%s\x1f%d\x1f", acct.Username, len(acct.Posts))
		sample := acct.Posts
		if len(sample) > f.SamplePosts {
			sample = sample[:f.SamplePosts]
		}
		for _, post := range sample {
			io.WriteString(h, post.UploadDate)
			io.WriteString(h, prefixRunes(post.Caption, f.CaptionChars))
			io.WriteString(h, "\x1e")
		}
		io.WriteString(h, "\x1d")
	}
	return hex.EncodeToString(h.Sum(nil))
}

func prefixRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
