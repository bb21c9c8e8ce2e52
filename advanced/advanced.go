// Lower level access to the collision tests.
//
// Most users want the collishi package instead. This package exposes the
// numeric building blocks the tests are made of, for writing predicates in the
// same division free style, and a version of Collide which panics instead of
// returning an error.
package advanced

import "github.com/shidacea/collishi/internal"

type Kind = internal.Kind
type Shape = internal.Shape
type Point = internal.Point
type Line = internal.Line
type Circle = internal.Circle
type Box = internal.Box
type Triangle = internal.Triangle

const (
	KindPoint    = internal.KindPoint
	KindLine     = internal.KindLine
	KindCircle   = internal.KindCircle
	KindBox      = internal.KindBox
	KindTriangle = internal.KindTriangle
)

// Like collishi.Collide, but panics if either shape is invalid. The panic can
// be turned back into an error with HandleCollidePanicRecover.
func MustCollide(a, b Shape) bool {
	return internal.Collide(a, b)
}

// Pass the result of recover() to this in a deferred function. It returns the
// error MustCollide panicked with, nil if there was no panic, and re-panics
// with anything else.
func HandleCollidePanicRecover(r interface{}) error {
	return internal.HandleCollidePanicRecover(r)
}

func Abs(x float32) float32 {
	return internal.Abs(x)
}

// x*x with the sign of x.
func SignSquare(x float32) float32 {
	return internal.SignSquare(x)
}

// Is nominator/denominator < 0? Never true for a zero nominator.
func FractionLessThanZero(nominator, denominator float32) bool {
	return internal.FractionLessThanZero(nominator, denominator)
}

// Is 0 <= nominator/denominator <= 1? Well defined for a zero denominator.
func FractionBetweenZeroAndOne(nominator, denominator float32) bool {
	return internal.FractionBetweenZeroAndOne(nominator, denominator)
}

func Between(value, border1, border2 float32) bool {
	return internal.Between(value, border1, border2)
}

// Do the intervals spanned by the two sets of values intersect?
func Overlap(first, second []float32) bool {
	return internal.Overlap(first, second)
}
