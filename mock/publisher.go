package mock

import "github.com/fwojciec/storefind"

var _ storefind.FilterPublisher = (*FilterPublisher)(nil)

// FilterPublisher is a mock implementation of storefind.FilterPublisher.
type FilterPublisher struct {
	PublishFn func(state storefind.FilterState)
}

func (p *FilterPublisher) Publish(state storefind.FilterState) {
	p.PublishFn(state)
}
