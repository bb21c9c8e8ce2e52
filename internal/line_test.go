package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionLineLine(t *testing.T) {
	assert.True(t, CollisionLineLine(0, 0, 1, 1, 0, 1, 1, -1))
	assert.False(t, CollisionLineLine(0, 0, 1, 0, 1.1, -1, 0, 2))
	assert.True(t, CollisionLineLine(0, 0, 1, 0, 0.9, -1, 0, 2))
	assert.False(t, CollisionLineLine(0, 0, 1, 1, 0, 0.1, 1, 1))

	t.Run("crossing", func(t *testing.T) {
		assert.True(t, CollisionLineLine(0, 0, 2, 2, 0, 2, 2, -2))
		assert.True(t, CollisionLineLine(0, 0, 4, 0, 2, -1, 0, 2))
		assert.False(t, CollisionLineLine(0, 0, 1, 0, 2, -1, 0, 2))
		assert.False(t, CollisionLineLine(0, 0, 4, 0, 2, 0.5, 0, 2))
	})

	t.Run("collinear", func(t *testing.T) {
		assert.True(t, CollisionLineLine(0, 0, 1, 0, 1, 0, 1, 0))
		assert.False(t, CollisionLineLine(0, 0, 1, 0, 1.1, 0, 1, 0))
		assert.False(t, CollisionLineLine(1.1, 0, 1, 0, 0, 0, 1, 0))
		assert.True(t, CollisionLineLine(0, 0, 4, 0, 1, 0, 1, 0))
		assert.True(t, CollisionLineLine(0, 0, 2, 0, -1, 0, 2, 0))
	})
}

func TestCollisionLineCircle(t *testing.T) {
	assert.True(t, CollisionLineCircle(1, 1, 8, 8, -3, -3, 100))
	assert.True(t, CollisionLineCircle(1, 1, 8, 8, 4, 4, 0.1))
	assert.False(t, CollisionLineCircle(1, 1, 8, 8, 10, 10, 1.4))
	assert.True(t, CollisionLineCircle(1, 1, 8, 8, 10, 10, 1.5))

	t.Run("beside the line", func(t *testing.T) {
		assert.True(t, CollisionLineCircle(0, 0, 10, 0, 5, 3, 3))
		assert.False(t, CollisionLineCircle(0, 0, 10, 0, 5, 3, 2.9))
	})

	t.Run("beyond the end points", func(t *testing.T) {
		assert.False(t, CollisionLineCircle(0, 0, 10, 0, 13, 0, 2))
		assert.True(t, CollisionLineCircle(0, 0, 10, 0, 12, 0, 2))
		assert.True(t, CollisionLineCircle(0, 0, 10, 0, -1, -1, 1.5))
		assert.False(t, CollisionLineCircle(0, 0, 10, 0, -2, -2, 2.5))
	})
}

func TestCollisionLineBox(t *testing.T) {
	assert.True(t, CollisionLineBox(3, 2, 8, 11, 0, 1, 10, 10))
	assert.False(t, CollisionLineBox(11, 0, 11, 13, 0, 1, 10, 10))
	assert.True(t, CollisionLineBox(1, 1, 7, 7, 2, 2, 4, 4))

	t.Run("passing through", func(t *testing.T) {
		assert.True(t, CollisionLineBox(12, 5, -14, 0, 0, 1, 10, 10))
		assert.True(t, CollisionLineBox(12, -1, -14, 14, 0, 1, 10, 10))
		assert.True(t, CollisionLineBox(11, 13, -4, -4, 0, 1, 10, 10))
	})

	t.Run("missing", func(t *testing.T) {
		assert.False(t, CollisionLineBox(12, 13, -1, -1, 0, 1, 10, 10))
		assert.False(t, CollisionLineBox(-1, 5, -3, 0, 0, 1, 10, 10))
		assert.False(t, CollisionLineBox(-2, -2, 0, 20, 0, 1, 10, 10))
	})

	t.Run("along a side", func(t *testing.T) {
		assert.True(t, CollisionLineBox(0, -5, 0, 20, 0, 1, 10, 10))
		assert.False(t, CollisionLineBox(0, 12, 0, 3, 0, 1, 10, 10))
	})
}

func TestCollisionLineTriangle(t *testing.T) {
	assert.True(t, CollisionLineTriangle(3, 0, 0, 2, 2, 1, -1, 3, 2, 1))
	assert.False(t, CollisionLineTriangle(2, 4, 2, 0, 2, 1, -1, 3, 2, 1))
	assert.True(t, CollisionLineTriangle(2, 1, -1, 3, 2, 1, -1, 3, 2, 1))
	assert.True(t, CollisionLineTriangle(2, 1, 2, 1, 2, 1, -1, 3, 2, 1))

	t.Run("through and inside", func(t *testing.T) {
		assert.True(t, CollisionLineTriangle(-1, 1, 6, 0, 0, 0, 4, 0, 0, 4))
		assert.True(t, CollisionLineTriangle(1, 1, 1, 1, 0, 0, 4, 0, 0, 4))
	})

	t.Run("missing", func(t *testing.T) {
		assert.False(t, CollisionLineTriangle(-1, 5, 6, 0, 0, 0, 4, 0, 0, 4))
		assert.False(t, CollisionLineTriangle(3, 3, 2, 2, 0, 0, 4, 0, 0, 4))
	})

	t.Run("triangle entirely on the positive side", func(t *testing.T) {
		assert.False(t, CollisionLineTriangle(-4, 4, 5, -5, 5, 3, -4, -2, 1, 2))
	})
}
