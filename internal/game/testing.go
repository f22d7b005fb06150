//go:build !production

package game

import (
	"github.com/stretchr/testify/mock"
)

// MockLedger 积分账本 mock
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Points() int {
	return m.Called().Int(0)
}

func (m *MockLedger) MaxPoints() int {
	return m.Called().Int(0)
}

func (m *MockLedger) Cost() int {
	return m.Called().Int(0)
}

func (m *MockLedger) CanAfford() bool {
	return m.Called().Bool(0)
}

func (m *MockLedger) Charge() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockLedger) Credit(category string, score int) {
	m.Called(category, score)
}

func (m *MockLedger) Rounds() int {
	return m.Called().Int(0)
}

func (m *MockLedger) Tally(label string) int {
	return m.Called(label).Int(0)
}
