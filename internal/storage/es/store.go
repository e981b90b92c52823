package es

import (
	"context"
	"fmt"
)

// Store combines the es Storer and Reader over the same index.
type Store struct {
	*Storer
	*Reader
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	storer, err := NewStorer(ctx, config)
	if err != nil {
		return nil, err
	}
	reader, err := NewReader(config)
	if err != nil {
		return nil, err
	}
	return &Store{Storer: storer, Reader: reader}, nil
}

// Refresh makes recently indexed evaluations visible to List.
func (s *Store) Refresh(ctx context.Context) error {
	if _, err := s.Storer.client.Indices.Refresh().Index(s.Storer.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}
	return nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	ok, err := s.Storer.client.Ping().Do(ctx)
	return err == nil && ok
}
