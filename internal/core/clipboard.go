package core

import (
	"sync"

	"github.com/inovacc/gradients/internal/export"
	"golang.design/x/clipboard"
)

// Clipboard receives copied text.
type Clipboard interface {
	WriteText(text string) error
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

type systemClipboard struct{}

func (systemClipboard) WriteText(text string) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})

	if clipboardErr != nil {
		return &ClipboardError{Err: clipboardErr}
	}

	clipboard.Write(clipboard.FmtText, []byte(text))

	return nil
}

// SetClipboard replaces the clipboard the gallery copies to.
func (g *Gallery) SetClipboard(c Clipboard) {
	g.clipboard = c
}

// CopyText returns the background rule copied for gradient id.
func (g *Gallery) CopyText(id int) (string, error) {
	entry, err := g.Gradient(id)
	if err != nil {
		return "", err
	}

	return export.BackgroundRule(entry), nil
}

// Copy places the background rule of gradient id on the clipboard and
// returns the copied text.
func (g *Gallery) Copy(id int) (string, error) {
	text, err := g.CopyText(id)
	if err != nil {
		return "", err
	}

	if err := g.clipboard.WriteText(text); err != nil {
		return text, err
	}

	g.log.Debug("gradient copied", "id", id)

	return text, nil
}
