package dogs

import "context"

// Repository es el puerto de persistencia del registry.
// Implementaciones: adapters/storage/{sqlite,postgres,memory}.
type Repository interface {
	// EnsureSchema crea la tabla si no existe. Idempotente.
	EnsureSchema(ctx context.Context) error

	// SeedIfEmpty inserta seeds (en orden) solo si la tabla no tiene filas.
	// El conteo y los inserts deben ser atómicos respecto de otros SeedIfEmpty.
	// Devuelve true si insertó.
	SeedIfEmpty(ctx context.Context, seeds []Dog) (bool, error)

	Insert(ctx context.Context, d Dog) error

	// List devuelve todos los registros, sin orden garantizado.
	List(ctx context.Context) ([]Dog, error)

	// Delete no falla si el id no existe.
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int, error)
}
