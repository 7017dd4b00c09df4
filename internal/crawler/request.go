package crawler

import "fmt"

// Kind tells the router which handler processes a request.
type Kind int

const (
	KindSearch Kind = iota
	KindJobListing
)

func (k Kind) String() string {
	switch k {
	case KindSearch:
		return "search"
	case KindJobListing:
		return "job_listing"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Request is one pending page visit.
type Request struct {
	Kind       Kind
	URL        string
	RetryCount int
}

// NewRequest builds a request of the given kind for url.
func NewRequest(kind Kind, url string) Request {
	return Request{Kind: kind, URL: url}
}
