package engine

// Delete removes the junction at req.Path and then its empty directory. If
// the reparse point cannot be removed the directory is left alone.
func (e *Engine) Delete(req DeleteRequest) error {
	if err := e.Primitive.Delete(req.Path); err != nil {
		return &OperationError{Op: "delete", Path: req.Path, Err: err}
	}
	if err := e.Fs.Remove(req.Path); err != nil {
		return &PartialDeleteError{Path: req.Path, Err: err}
	}
	e.Log.Debug().Str("path", req.Path).Msg("junction removed")
	return nil
}
