// Package corpus defines the read-only account/post records the engine
// consumes and small helpers for deriving text blobs and dates from them.
package corpus

import (
	"context"
	"strings"
	"time"
)

// DateLayout is the wire format for post upload dates.
const DateLayout = "2006-01-02"

// Post is a single social-media post. Records are snapshots: the engine
// never mutates them. Numeric fields may be absent or null upstream; both
// decode to zero.
type Post struct {
	UploadDate string   `json:"upload_date"`
	Caption    string   `json:"caption"`
	Hashtags   []string `json:"hashtags"`
	Likes      int64    `json:"number_of_likes"`
	Comments   int64    `json:"number_of_comments"`
	VideoViews int64    `json:"video_view_count"`
	URL        string   `json:"url"`
}

// TextBlob returns the lowercased caption and hashtags joined by spaces.
// An empty post still yields a single space between caption and hashtags,
// so the blob is never the empty string.
func (p Post) TextBlob() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(p.Caption))
	b.WriteString(" ")
	for i, h := range p.Hashtags {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strings.ToLower(h))
	}
	return b.String()
}

// Engagement sums likes, comments and video views.
func (p Post) Engagement() int64 {
	return p.Likes + p.Comments + p.VideoViews
}

// Date parses the upload date. ok is false for missing or malformed dates;
// callers are expected to skip such posts in date-dependent computations.
func (p Post) Date() (time.Time, bool) {
	return ParseDate(p.UploadDate)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MonthOf truncates a date to the first of its calendar month.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Account is one publisher account with its posts.
type Account struct {
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Followers   int64  `json:"followers"`
	Following   int64  `json:"following"`
	Country     string `json:"country"`
	ExternalURL string `json:"external_url"`
	Posts       []Post `json:"posts"`
}

// Corpus is the full set of accounts a render operates on.
type Corpus []Account

// TotalPosts counts posts across all accounts.
func (c Corpus) TotalPosts() int {
	n := 0
	for _, a := range c {
		n += len(a.Posts)
	}
	return n
}

// DateBounds returns the minimum and maximum parseable upload dates across
// the corpus. ok is false when no post carries a parseable date.
func (c Corpus) DateBounds() (min, max time.Time, ok bool) {
	for _, a := range c {
		for _, p := range a.Posts {
			d, valid := p.Date()
			if !valid {
				continue
			}
			if !ok {
				min, max, ok = d, d, true
				continue
			}
			if d.Before(min) {
				min = d
			}
			if d.After(max) {
				max = d
			}
		}
	}
	return min, max, ok
}

// DateRange is an inclusive [Start, End] day range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Source produces a corpus. Connection details, credentials and retry
// policy all live behind this interface.
type Source interface {
	Fetch(ctx context.Context) (Corpus, error)
}

// FetchOrEmpty fetches from src, degrading to an empty corpus when the
// source is nil or the fetch fails. A missing upstream must never crash a
// render; every aggregate is defined on an empty corpus.
func FetchOrEmpty(ctx context.Context, src Source) Corpus {
	if src == nil {
		return Corpus{}
	}
	c, err := src.Fetch(ctx)
	if err != nil || c == nil {
		return Corpus{}
	}
	return c
}
