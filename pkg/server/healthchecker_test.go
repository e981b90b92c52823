package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type downChecker struct{}

func (downChecker) Healthy(context.Context) bool { return false }

func TestCheckerFor(t *testing.T) {
	ctx := context.Background()

	assert.False(t, CheckerFor(downChecker{}).Healthy(ctx))
	assert.True(t, CheckerFor(struct{}{}).Healthy(ctx))
	assert.True(t, CheckerFor(nil).Healthy(ctx))
}
