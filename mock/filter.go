// Package mock provides mock implementations of notestrip interfaces for
// testing.
package mock

import "github.com/fwojciec/notestrip"

var _ notestrip.Filter = (*Filter)(nil)

// Filter is a mock implementation of notestrip.Filter.
type Filter struct {
	FilterFn func(html string) (string, int, error)
}

func (f *Filter) Filter(html string) (string, int, error) {
	return f.FilterFn(html)
}
