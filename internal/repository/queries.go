package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Queries is the hand-written query layer over the connection pool. All
// statements are single-row or single-statement writes; there are no
// multi-statement transactions in this store.
type Queries struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}
