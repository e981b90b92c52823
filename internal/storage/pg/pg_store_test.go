//go:build integration

package pg

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/exprtree/internal/domain"
	"github.com/DjordjeVuckovic/exprtree/internal/types/operator"
	"github.com/DjordjeVuckovic/exprtree/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/exprtree/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx   context.Context
	testPool  *ConnectionPool
	testStore *Store
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "exprtree_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}
	testStore = NewStore(testPool)

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE evaluations")
	if err != nil {
		t.Fatalf("failed to truncate table: %v", err)
	}
}

func TestStore_SaveAndList(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	base := time.Now().UTC().Truncate(time.Millisecond)

	id, err := testStore.Save(testCtx, domain.Evaluation{
		Source:     domain.SourceAPI,
		Expression: "(2+3)*4",
		Postfix:    "2 3 + 4 *",
		Result:     "20",
		CreatedAt:  base,
	})
	require.NoError(t, err)

	err = testStore.SaveBulk(testCtx, []domain.Evaluation{
		{Source: domain.SourceRelay, Dialect: operator.Boolean, Expression: "~ true", Result: "false", CreatedAt: base.Add(time.Second)},
	})
	require.NoError(t, err)

	res, err := testStore.List(testCtx, pagination.OffsetRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "~ true", res.Items[0].Expression)
	assert.Equal(t, id, res.Items[1].ID)
	assert.Equal(t, "2 3 + 4 *", res.Items[1].Postfix)
}

func TestHealthChecker(t *testing.T) {
	hc := NewHealthChecker(testPool)
	assert.True(t, hc.Healthy(testCtx))
	assert.False(t, NewHealthChecker(nil).Healthy(testCtx))
}
