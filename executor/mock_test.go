package executor

import "context"

// mockDisplay records draw requests and answers with a scripted
// collision result.
type mockDisplay struct {
	cleared   bool
	collision bool

	drawX      uint8
	drawY      uint8
	drawSprite []byte
}

func (m *mockDisplay) Clear() {
	m.cleared = true
}

func (m *mockDisplay) Draw(x, y uint8, sprite []byte) bool {
	m.drawX = x
	m.drawY = y
	m.drawSprite = append([]byte(nil), sprite...)
	return m.collision
}

// mockInput answers key and randomness queries with scripted values.
type mockInput struct {
	pressed map[uint8]bool
	key     uint8
	random  uint8
}

func (m *mockInput) Pressed(key uint8) bool {
	return m.pressed[key]
}

func (m *mockInput) WaitKey(_ context.Context) (uint8, error) {
	return m.key, nil
}

func (m *mockInput) Random() uint8 {
	return m.random
}
