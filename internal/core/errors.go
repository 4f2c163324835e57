package core

import "fmt"

// ClipboardError wraps a failure to reach the system clipboard.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard unavailable: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}
