package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpuschat/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/corpuschat/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.Nil(t, bar.Init())
}

func TestStatusBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(120)

	assert.Contains(t, bar.View(), "Ready")
	assert.Contains(t, bar.View(), "enter: ask")

	bar.SetSession("gemini-2.5-flash", 20)
	assert.Contains(t, bar.View(), "gemini-2.5-flash | 20 records")

	bar.SetState(StateThinking)
	assert.Contains(t, bar.View(), "Thinking...")

	bar.SetState(StateError)
	bar.SetMessage("quota exceeded")
	assert.Contains(t, bar.View(), "Error: quota exceeded")

	bar.Clear()
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
}
