package entity

import (
	"classic-snake/game/types"
)

type Snake struct {
	Body      []types.Point // tail first, head last
	Direction types.Direction
}

// NewSnake copies body so the caller's slice is never aliased.
func NewSnake(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
	}
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

// NextHead is the cell the head enters on the next step.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.Vector())
}

// TravelVector is the step the snake actually took last: head minus the segment
// right behind it. A one-segment snake reports its stored direction.
func (s *Snake) TravelVector() types.Point {
	if len(s.Body) < 2 {
		return s.Direction.Vector()
	}
	return s.GetHead().Sub(s.Body[len(s.Body)-2])
}

// SetDirection turns the snake unless dir points straight back along the travel
// vector. It reports whether the turn was taken.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() {
		return false
	}
	reverse := s.TravelVector()
	reverse = types.Point{X: -reverse.X, Y: -reverse.Y}
	if dir.Vector() == reverse {
		return false
	}
	s.Direction = dir
	return true
}

func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body, safe to hand to renderers.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
