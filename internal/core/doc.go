// Package core wires the gallery together for the command layer.
//
// A [Gallery] owns the blob store and the three stateful services built on
// it. Functions here return errors instead of printing; presentation belongs
// in cmd and cli.
//
// # Lifecycle
//
//  1. [Open] resolves the data directory, opens the configured backend and
//     loads every service from its persisted blob
//  2. commands call the services or the helpers below
//  3. [Gallery.Close] releases the store
//
// # Helpers
//
//   - [Gallery.Visible] applies filter criteria with the current favorites
//   - [Gallery.Export] renders a gradient and writes it to disk
//   - [Gallery.Copy] places the gradient's background rule on the clipboard
//   - [Gallery.Detail] gathers everything the detail card shows
package core
