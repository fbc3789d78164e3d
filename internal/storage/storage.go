package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/history-server/internal/config"
	"github.com/carson-networks/history-server/internal/storage/purchase"
)

type Storage struct {
	DB        *sql.DB
	Purchases purchase.IPurchaseTable

	bobDB bob.DB
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.Postgres.Username + ":" +
		env.Postgres.Password + "@" + env.Postgres.Address + ":" +
		env.Postgres.Port + "/" + env.Postgres.DB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:        db,
		Purchases: purchase.NewReader(bobDB),
		bobDB:     bobDB,
	}
}

// Write opens a transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
