// Package cli provides the terminal user interface components for gradients.
//
// The package uses [Bubbletea] for interactive views and [Lipgloss] for
// styling. Components follow the Bubbletea Model-View-Update architecture.
//
// # Components
//
//   - Browser: filterable gradient list with favorite toggling
//   - Swatch: a row of colored cells previewing a gradient's stops
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
