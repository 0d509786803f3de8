package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleNext(t *testing.T) {
	next, ok := LifecyclePending.Next()
	assert.True(t, ok)
	assert.Equal(t, LifecycleConfirmed, next)

	next, ok = LifecycleConfirmed.Next()
	assert.True(t, ok)
	assert.Equal(t, LifecycleInProgress, next)

	next, ok = LifecycleInProgress.Next()
	assert.False(t, ok)
	assert.Equal(t, LifecycleInProgress, next)
}

func TestLifecycleActionLabel(t *testing.T) {
	assert.Equal(t, "Pedido confirmado", LifecycleConfirmed.ActionLabel())
	assert.Equal(t, "Coleta em andamento", LifecycleInProgress.ActionLabel())
}
