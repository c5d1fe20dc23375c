package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	assert.True(t, mock.Now().Equal(epoch))

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	assert.True(t, mock.Now().Equal(epoch.Add(90*time.Minute)))

	later := epoch.Add(24 * time.Hour)
	mock.SetTime(later)
	assert.True(t, mock.Now().Equal(later))
}

func TestMonotonicTimeProviderMovesForward(t *testing.T) {
	p := NewMonotonicTimeProvider()
	t1 := p.Now()
	time.Sleep(time.Millisecond)
	assert.True(t, p.Now().After(t1))
}

func TestFrameClockRestart(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	c := NewFrameClock(mock)

	mock.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, c.Elapsed())
	assert.Equal(t, 16*time.Millisecond, c.Restart())

	mock.Advance(5 * time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, c.Restart())
	assert.Zero(t, c.Restart())
}

func TestFrameClockDropsGapOnRestart(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	c := NewFrameClock(mock)

	mock.Advance(10 * time.Minute)
	c.Restart()
	mock.Advance(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, c.Restart())
}

func TestFrameClockNeverNegative(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	c := NewFrameClock(mock)
	mock.SetTime(epoch.Add(-time.Second))
	assert.Zero(t, c.Restart())
}
