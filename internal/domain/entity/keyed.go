package entity

// Keyed es cualquier registro de una colección identificable por su clave.
type Keyed[K comparable] interface {
	Key() K
}
