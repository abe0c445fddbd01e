package engine

// Request is one parsed invocation. It is built once by the dispatcher and
// handed to Engine.Run.
type Request interface {
	request()
}

// ListRequest reports the junction at Path, or every junction beneath it when
// Recursive is set. Quiet suppresses access diagnostics during a recursive
// scan.
type ListRequest struct {
	Path      string
	Quiet     bool
	Recursive bool
}

// CreateRequest makes Source a junction pointing at Destination.
type CreateRequest struct {
	Source      string
	Destination string
}

// DeleteRequest removes the junction at Path and its empty directory.
type DeleteRequest struct {
	Path string
}

func (ListRequest) request()   {}
func (CreateRequest) request() {}
func (DeleteRequest) request() {}
