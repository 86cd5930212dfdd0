package entity

import "fmt"

// Rect is a screen rectangle in pixels. X/Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Area returns W*H.
func (r Rect) Area() int {
	return r.W * r.H
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}
