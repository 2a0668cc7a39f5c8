// Package store provides the public factory for the holonet storage backend
// while keeping implementation details internal.
package store

import (
	"github.com/mesh-intelligence/holonet/internal/store"
	"github.com/mesh-intelligence/holonet/pkg/types"
)

// NewBackend creates a new backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := store.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".holonet-db",
//	})
//	defer backend.Detach()
func NewBackend() types.Store {
	return store.NewBackend()
}
