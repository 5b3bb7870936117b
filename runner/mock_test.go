package runner

import "context"

// mockDisplay is a no-op display collaborator.
type mockDisplay struct {
	clears int
	draws  int
}

func (m *mockDisplay) Clear() {
	m.clears++
}

func (m *mockDisplay) Draw(_, _ uint8, _ []byte) bool {
	m.draws++
	return false
}

// mockInput serves scripted key presses.
type mockInput struct {
	pressed  map[uint8]bool
	keys     []uint8 // served by WaitKey in order
	waitErr  error
	waited   int
	randomed int
}

func (m *mockInput) Pressed(key uint8) bool {
	return m.pressed[key]
}

func (m *mockInput) WaitKey(_ context.Context) (uint8, error) {
	if m.waitErr != nil {
		return 0, m.waitErr
	}
	key := m.keys[m.waited]
	m.waited++
	return key, nil
}

func (m *mockInput) Random() uint8 {
	m.randomed++
	return 0x42
}
