package bootstrap

import (
	"fmt"

	"dog-registry/internal/adapters/storage/memory"
	"dog-registry/internal/adapters/storage/postgres"
	"dog-registry/internal/adapters/storage/sqlite"
	"dog-registry/internal/config"
	"dog-registry/internal/domain/dogs"
)

// Store es el handle de storage del proceso. Se abre una vez al arrancar
// y se cierra en el shutdown.
type Store struct {
	Repo   dogs.Repository
	Driver string

	close func() error
}

func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore abre el backend configurado. No crea el schema: eso es
// responsabilidad de Registry.Initialize.
func OpenStore(cfg config.StorageConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{Repo: sqlite.NewDogsRepo(db), Driver: config.DriverSQLite, close: db.Close}, nil

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &Store{Repo: postgres.NewDogsRepo(db), Driver: config.DriverPostgres, close: db.Close}, nil

	case config.DriverMemory:
		return &Store{Repo: memory.NewDogRepo(), Driver: config.DriverMemory}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
