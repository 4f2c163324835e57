// Package model defines the data structures used throughout gradients.
//
// These models are shared by the storage layer, the services and the command
// layer. Their JSON form is the durable encoding written to the blob store.
//
// # Gradient
//
// The [Gradient] struct represents one catalog entry:
//
//	type Gradient struct {
//	    ID          int      // Unique, never reused; 1..8 are built-ins
//	    Name        string   // Display name
//	    Gradient    string   // CSS gradient expression
//	    Colors      []string // Hex color stops
//	    Description string
//	    Category    string
//	}
//
// # Collection
//
// The [Collection] struct groups gradient ids under a name and an accent
// color. Membership is stored as ids only; gradients carry no back-reference.
//
// # Config
//
// The [Config] struct holds application configuration such as the storage
// backend and export defaults.
package model
