// Package types defines the Store and table interfaces, the entity types
// (User, Person, Planet, Favorite) with their JSON serialization, and the
// standard errors shared by the store and HTTP layers.
package types
