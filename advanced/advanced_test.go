package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleCollidePanicRecover(t *testing.T) {
	testFn := func(a, b Shape) (result bool, err error) {
		defer func() {
			recoveredErr := HandleCollidePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		return MustCollide(a, b), nil
	}

	t.Run("with invalid shape", func(t *testing.T) {
		_, err := testFn(nil, Point{})
		assert.EqualError(t, err, "shape is nil")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			defer func() {
				HandleCollidePanicRecover(recover())
			}()
			panic("true panic")
		})
	})

	t.Run("no error", func(t *testing.T) {
		result, err := testFn(Point{X: 1, Y: 2}, Circle{X: 1, Y: 2, R: 0})
		assert.NoError(t, err)
		assert.True(t, result)
	})
}

func TestMustCollide(t *testing.T) {
	assert.True(t, MustCollide(Box{W: 1, H: 1}, Line{X: 2, Y: 2, DX: -1, DY: -1}))
	assert.False(t, MustCollide(Box{W: 1, H: 1}, Line{X: 2, Y: 2, DX: -0.5, DY: -0.5}))
	assert.Panics(t, func() { MustCollide(Point{}, nil) })
}

func TestNumericHelpers(t *testing.T) {
	assert.Equal(t, float32(2.5), Abs(-2.5))
	assert.Equal(t, float32(-9), SignSquare(-3))
	assert.True(t, FractionLessThanZero(-1, 2))
	assert.False(t, FractionLessThanZero(0, -2))
	assert.True(t, FractionBetweenZeroAndOne(0, 0))
	assert.False(t, FractionBetweenZeroAndOne(3, 2))
	assert.True(t, Between(1, 2, 0))
	assert.True(t, Overlap([]float32{0, 1}, []float32{1, 2}))
	assert.False(t, Overlap(nil, []float32{1, 2}))
}
