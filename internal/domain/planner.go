package domain

import (
	m "github.com/mouse-blink/docfold/internal/model"
)

// MergePlanner holds the merge requests staged during one conversion run,
// in the order they were staged.
type MergePlanner struct {
	requests []m.MergeRequest
}

// NewMergePlanner returns an empty planner.
func NewMergePlanner() *MergePlanner {
	return &MergePlanner{}
}

// Reset discards every staged request.
func (p *MergePlanner) Reset() {
	clear(p.requests)
	p.requests = p.requests[:0]
}

// Stage appends a request.
func (p *MergePlanner) Stage(req m.MergeRequest) {
	p.requests = append(p.requests, req)
}

// Len returns the number of staged requests.
func (p *MergePlanner) Len() int {
	return len(p.requests)
}

// Requests returns a copy of the staged requests.
func (p *MergePlanner) Requests() []m.MergeRequest {
	return append([]m.MergeRequest(nil), p.requests...)
}

// Drain returns the staged requests and leaves the planner empty.
func (p *MergePlanner) Drain() []m.MergeRequest {
	requests := p.requests
	p.requests = nil

	return requests
}
