package lua

import (
	"sync"
	"time"

	"github.com/drake/tally/calc"
	"github.com/drake/tally/tape"
)

// MockHost implements the engine services for testing, backed by a real
// calculator.
type MockHost struct {
	mu sync.Mutex

	engine *calc.Engine
	tape   *tape.Tape

	// Captured calls
	PressCalls  []string
	PrintCalls  []string
	ErrorCalls  []string
	QuitCalled  bool
	ReloadCalls int
	LoadCalls   []string

	// Timers are never scheduled; tests fire them with Engine.FireTimer.
	Timers       map[int]time.Duration
	nextTimer    int
	CancelAllRan int
}

func NewMockHost() *MockHost {
	return &MockHost{
		engine: calc.NewEngine(),
		tape:   tape.New(10),
		Timers: make(map[int]time.Duration),
	}
}

func (m *MockHost) Press(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PressCalls = append(m.PressCalls, label)
	before := m.engine.State()
	if err := m.engine.Press(label); err != nil {
		return err
	}
	if label == "=" {
		m.tape.Record(before.Display, before.Entry, m.engine.Display())
	}
	return nil
}

func (m *MockHost) State() calc.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.engine.State()
}

func (m *MockHost) Tape() []tape.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tape.Entries()
}

func (m *MockHost) Print(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PrintCalls = append(m.PrintCalls, text)
}

func (m *MockHost) ShowError(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorCalls = append(m.ErrorCalls, text)
}

func (m *MockHost) Quit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuitCalled = true
}

func (m *MockHost) Load(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls = append(m.LoadCalls, path)
}

func (m *MockHost) Reload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReloadCalls++
}

func (m *MockHost) After(d time.Duration) int {
	return m.addTimer(d)
}

func (m *MockHost) Every(d time.Duration) int {
	return m.addTimer(d)
}

func (m *MockHost) addTimer(d time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextTimer++
	m.Timers[m.nextTimer] = d
	return m.nextTimer
}

func (m *MockHost) Cancel(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Timers, id)
}

func (m *MockHost) CancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.Timers)
	m.CancelAllRan++
}
