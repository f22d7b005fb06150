//go:build !production

package sound

import "github.com/stretchr/testify/mock"

// MockPlayer 用于测试的音效播放器
type MockPlayer struct {
	mock.Mock
}

func (m *MockPlayer) Play(name string) {
	m.Called(name)
}
