package dogs

import (
	"context"

	"dog-registry/internal/platform/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
)

// Registry es dueño exclusivo de los registros persistidos.
// No sabe nada de HTTP. Es seguro para uso concurrente: toda la
// atomicidad se delega al Repository.
type Registry struct {
	repo   Repository
	newID  func() string
	locale language.Tag
	seed   bool
	log    logger.Logger

	tp  trace.TracerProvider
	mp  metric.MeterProvider
	tel telemetry
}

type Option func(*Registry)

// WithLocale define el locale usado para ordenar ListAll.
func WithLocale(tag language.Tag) Option {
	return func(r *Registry) { r.locale = tag }
}

// WithSeed permite desactivar el seed inicial (default: activado).
func WithSeed(enabled bool) Option {
	return func(r *Registry) { r.seed = enabled }
}

func WithLogger(l logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Registry) {
		if tp != nil {
			r.tp = tp
		}
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(r *Registry) {
		if mp != nil {
			r.mp = mp
		}
	}
}

func NewRegistry(repo Repository, opts ...Option) *Registry {
	r := &Registry{
		repo:   repo,
		newID:  uuid.NewString,
		locale: language.English,
		seed:   true,
		log:    logger.Nop(),
		tp:     otel.GetTracerProvider(),
		mp:     otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.tel = newTelemetry(r.tp, r.mp)
	return r
}

// Initialize asegura el schema y, si la tabla está vacía en este momento,
// inserta los seeds (Comet, Oscar) con ids nuevos.
//
// El gate es "0 filas ahora", no un flag persistente: si se borran todos los
// perros y el proceso reinicia, los seeds vuelven a insertarse.
// El conteo + inserts corren en una sola transacción del store, así que dos
// Initialize concurrentes sobre una tabla vacía no duplican seeds.
func (r *Registry) Initialize(ctx context.Context) (err error) {
	ctx, span := r.tel.start(ctx, "initialize")
	defer func() { r.tel.end(ctx, span, "initialize", err) }()

	if err := r.repo.EnsureSchema(ctx); err != nil {
		return storageErr("initialize", err)
	}
	if !r.seed {
		return nil
	}

	seeds := make([]Dog, 0, len(seedDogs))
	for _, s := range seedDogs {
		seeds = append(seeds, Dog{ID: r.newID(), Name: s.Name, Breed: s.Breed})
	}

	seeded, err := r.repo.SeedIfEmpty(ctx, seeds)
	if err != nil {
		return storageErr("initialize", err)
	}
	span.SetAttributes(attribute.Bool("dogs.seeded", seeded))
	if seeded {
		r.log.Info("initialising database", map[string]any{"seeded": len(seeds)})
		r.tel.created.Add(ctx, int64(len(seeds)))
	}
	return nil
}

// Add crea un perro con id nuevo. Nombre/raza vacíos se aceptan tal cual.
// Duplicados (name, breed) están permitidos.
func (r *Registry) Add(ctx context.Context, name, breed string) (_ Dog, err error) {
	ctx, span := r.tel.start(ctx, "add")
	defer func() { r.tel.end(ctx, span, "add", err) }()

	d := Dog{
		ID:    r.newID(),
		Name:  name,
		Breed: breed,
	}
	span.SetAttributes(attribute.String("dog.id", d.ID))

	if err := r.repo.Insert(ctx, d); err != nil {
		return Dog{}, storageErr("add", err)
	}

	r.tel.created.Add(ctx, 1)
	r.log.Debug("dog created", map[string]any{"dog_id": d.ID})
	return d, nil
}

// ListAll devuelve todos los perros ordenados por nombre (collation del locale).
// Empates sin orden secundario garantizado. Store vacío => slice vacío.
func (r *Registry) ListAll(ctx context.Context) (_ []Dog, err error) {
	ctx, span := r.tel.start(ctx, "list_all")
	defer func() { r.tel.end(ctx, span, "list_all", err) }()

	items, err := r.repo.List(ctx)
	if err != nil {
		return nil, storageErr("list", err)
	}
	if items == nil {
		items = []Dog{}
	}

	sortByName(r.locale, items)
	span.SetAttributes(attribute.Int("dogs.count", len(items)))
	return items, nil
}

// Delete borra el perro si existe. Un id desconocido no es error.
func (r *Registry) Delete(ctx context.Context, id string) (err error) {
	ctx, span := r.tel.start(ctx, "delete", attribute.String("dog.id", id))
	defer func() { r.tel.end(ctx, span, "delete", err) }()

	if err := r.repo.Delete(ctx, id); err != nil {
		return storageErr("delete", err)
	}

	r.tel.deleted.Add(ctx, 1)
	r.log.Debug("dog deleted", map[string]any{"dog_id": id})
	return nil
}

// Count se usa en /health.
func (r *Registry) Count(ctx context.Context) (_ int, err error) {
	ctx, span := r.tel.start(ctx, "count")
	defer func() { r.tel.end(ctx, span, "count", err) }()

	n, err := r.repo.Count(ctx)
	if err != nil {
		return 0, storageErr("count", err)
	}
	return n, nil
}
