package mock

import "github.com/fwojciec/htmlrag"

var _ htmlrag.Inspector = (*Inspector)(nil)

// Inspector is a mock implementation of htmlrag.Inspector.
type Inspector struct {
	InspectFn func(html string) (*htmlrag.Profile, error)
}

func (i *Inspector) Inspect(html string) (*htmlrag.Profile, error) {
	return i.InspectFn(html)
}
