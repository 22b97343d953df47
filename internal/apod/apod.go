// Package apod models entries from the NASA Astronomy Picture of the Day
// feed and fetches them from the public API.
package apod

// DateFormat is the calendar date layout the APOD API expects.
const DateFormat = "2006-01-02"

// ServiceInception is the first date the feed has data for. Requests before
// it are answered by the service with an error payload that carries no date
// field.
const ServiceInception = "1995-06-16"

// DefaultCopyright is the sentinel stored when an entry has no copyright
// attribution (most NASA-produced images).
const DefaultCopyright = "No copyright info"

const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Entry is one date's worth of feed metadata. Date is the unique key.
type Entry struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Copyright   string `json:"copyright"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
}

// IsVideo reports whether the entry's media is a video rather than an image.
func (e Entry) IsVideo() bool {
	return e.MediaType == MediaVideo
}

// BestURL returns the high-resolution URL when one exists, otherwise the
// standard-resolution URL.
func (e Entry) BestURL() string {
	if e.HDURL != "" {
		return e.HDURL
	}
	return e.URL
}

// HasCopyright reports whether the entry carries a real attribution rather
// than the sentinel.
func (e Entry) HasCopyright() bool {
	return e.Copyright != "" && e.Copyright != DefaultCopyright
}
