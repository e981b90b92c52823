package pg

import "context"

// Store combines the pg Storer and Reader over one connection pool.
type Store struct {
	*Storer
	*Reader
	pool *ConnectionPool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{
		Storer: NewStorer(pool),
		Reader: NewReader(pool),
		pool:   pool,
	}
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Healthy(ctx context.Context) bool {
	return NewHealthChecker(s.pool).Healthy(ctx)
}
