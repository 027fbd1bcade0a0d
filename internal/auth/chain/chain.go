package chain

// Handler is one link in the validation chain.
type Handler interface {
	// Handle resolves or forwards the request and returns the outcome.
	Handle(req *Request) Result

	// SetNext links the successor and returns it, so chains can be built
	// fluently: a.SetNext(b).SetNext(c) wires a→b→c and yields c.
	SetNext(next Handler) Handler
}

// link provides the successor reference and forwarding behavior shared by
// all handlers. A link does not own its successor's lifetime, only a
// reference to it.
type link struct {
	next Handler
}

// SetNext implements the fluent wiring contract.
func (l *link) SetNext(next Handler) Handler {
	l.next = next
	return next
}

// forward passes the identical request to the successor. A terminal link
// reports the decision already made at the caller's stage.
func (l *link) forward(req *Request, decided Result) Result {
	if l.next == nil {
		return decided
	}
	return l.next.Handle(req)
}
