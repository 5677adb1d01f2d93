package entity

import "snake-term/game/types"

// Snake is an ordered body with the head at index 0 and the tail last.
type Snake struct {
	body      []types.Point
	direction types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		body:      []types.Point{startPos},
		direction: dir,
	}
}

// NewSnakeWithBody builds a snake from an explicit body, head first.
// The slice is copied.
func NewSnakeWithBody(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{body: b, direction: dir}
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []types.Point {
	b := make([]types.Point, len(s.body))
	copy(b, s.body)
	return b
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// SetDirection adopts dir unless it would reverse a body longer than one
// segment onto itself. It reports whether dir was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == s.direction.Opposite() && len(s.body) > 1 {
		return false
	}
	s.direction = dir
	return true
}

// Move pushes newHead and drops the tail, keeping the length unchanged.
func (s *Snake) Move(newHead types.Point) {
	s.Grow(newHead)
	s.RemoveTail()
}

// Grow pushes newHead without dropping the tail.
func (s *Snake) Grow(newHead types.Point) {
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// HitsItself reports whether the head shares a cell with the rest of the body.
func (s *Snake) HitsItself() bool {
	head := s.body[0]
	for _, part := range s.body[1:] {
		if part == head {
			return true
		}
	}
	return false
}
