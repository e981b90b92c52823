package in_mem

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Evaluation
	order       []uuid.UUID
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Evaluation),
	}
}

func (s *InMemStorer) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	evaluation = evaluation.WithDefaults(time.Now())

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.put(evaluation)

	slog.Debug("Saved evaluation to in-memory storage", "id", evaluation.ID, "expression", evaluation.Expression)
	return evaluation.ID, nil
}

func (s *InMemStorer) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	now := time.Now()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, evaluation := range evaluations {
		s.put(evaluation.WithDefaults(now))
	}

	slog.Debug("Saved evaluations to in-memory storage", "count", len(evaluations))
	return nil
}

func (s *InMemStorer) put(evaluation domain.Evaluation) {
	if _, exists := s.storage[evaluation.ID]; !exists {
		s.order = append(s.order, evaluation.ID)
	}
	s.storage[evaluation.ID] = evaluation
}

func (s *InMemStorer) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	items := make([]domain.Evaluation, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		items = append(items, s.storage[s.order[i]])
	}

	return pagination.PageSlice(items, page), nil
}
