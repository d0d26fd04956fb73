package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/pixecs/playfield"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRGBA(t *testing.T) {
	buffer := []uint32{0xFF1111, 0x00AA11, 0x000000}
	pixels := make([]byte, len(buffer)*4)

	encodeRGBA(buffer, pixels)

	assert.Equal(t, []byte{
		0xFF, 0x11, 0x11, 0xFF,
		0x00, 0xAA, 0x11, 0xFF,
		0x00, 0x00, 0x00, 0xFF,
	}, pixels)
}

func TestTicksPerSecond(t *testing.T) {
	assert.Equal(t, 62, ticksPerSecond(16*time.Millisecond))
	assert.Equal(t, 1, ticksPerSecond(2*time.Second))
}

func TestStressKeys(t *testing.T) {
	first := stressKeys(0)
	assert.True(t, first.IsHeld(playfield.KeyRight))
	assert.False(t, first.IsHeld(playfield.KeyBoost))

	second := stressKeys(30)
	assert.True(t, second.IsHeld(playfield.KeyDown))
	assert.True(t, second.IsHeld(playfield.KeyBoost))

	assert.True(t, stressKeys(60).IsHeld(playfield.KeyLeft))
	assert.True(t, stressKeys(90).IsHeld(playfield.KeyUp))
	assert.True(t, stressKeys(120).IsHeld(playfield.KeyRight))
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestStartProfileRejectsUnknownMode(t *testing.T) {
	_, err := startProfile("gpu")
	assert.ErrorContains(t, err, "unknown profile mode")

	stop, err := startProfile("")
	require.NoError(t, err)
	stop()
}

func TestRunStress(t *testing.T) {
	cfg := playfield.DefaultConfig()
	cfg.ScreenWidth = 160
	cfg.ScreenHeight = 120
	cfg.EnemyCount = 20

	opts := &stressOptions{duration: 20 * time.Millisecond, gcPauseMetrics: true}
	report, err := runStress(context.Background(), cfg, opts, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 22, report.Entities)
	assert.Positive(t, report.TotalUpdates)
	assert.Len(t, report.UpdateTime.Samples, int(report.TotalUpdates))
	assert.LessOrEqual(t, report.UpdateTime.Min, report.UpdateTime.Avg)
	assert.LessOrEqual(t, report.UpdateTime.Avg, report.UpdateTime.Max)
	require.Len(t, report.Systems, 4)
	for _, sys := range report.Systems {
		assert.Equal(t, report.TotalUpdates, sys.ExecutionCount, sys.Name)
	}

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	assert.Contains(t, out.String(), "**Entities:** 22")
	assert.Contains(t, out.String(), "160x120 (19200 pixels)")
	assert.Contains(t, out.String(), "MovementSystem")
	assert.Contains(t, out.String(), "GC Pause Durations")
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}
