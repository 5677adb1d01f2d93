package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-term/config"
	"snake-term/engine"
	"snake-term/game/types"
)

func gridLines(t *testing.T, frame string, size int) []string {
	t.Helper()
	lines := strings.Split(frame, lineBreak)
	require.GreaterOrEqual(t, len(lines), size+1)
	return lines[1 : size+1]
}

func TestFramePlain(t *testing.T) {
	s := types.Snapshot{
		GridSize: 4,
		Body:     []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}},
		Food:     types.Point{X: 3, Y: 0},
		Score:    2,
		Elapsed:  83*time.Second + 700*time.Millisecond,
	}

	frame := Frame(s, PlainTheme(), "legend\n")

	assert.True(t, strings.HasPrefix(frame, "Score: 2  Time: 1m23s"+lineBreak))
	assert.Equal(t, []string{"...*", ".0..", ".0..", "...."}, gridLines(t, frame, 4))
	assert.True(t, strings.HasSuffix(frame, "legend"+lineBreak))
}

func TestFrameDoesNotMutateSnapshot(t *testing.T) {
	body := []types.Point{{X: 0, Y: 0}}
	s := types.Snapshot{GridSize: 3, Body: body, Food: types.Point{X: 2, Y: 2}, Score: 1}

	a := Frame(s, PlainTheme(), "")
	b := Frame(s, PlainTheme(), "")

	assert.Equal(t, a, b)
	assert.Equal(t, []types.Point{{X: 0, Y: 0}}, body)
}

func TestFrameColorKeepsGlyphs(t *testing.T) {
	// A renderer writing to a buffer detects no color support, so styled
	// output degrades to the bare glyphs.
	theme := ColorTheme(lipgloss.NewRenderer(&bytes.Buffer{}))
	s := types.Snapshot{GridSize: 2, Body: []types.Point{{X: 0, Y: 0}}, Food: types.Point{X: 1, Y: 1}, Score: 1}

	frame := Frame(s, theme, "")

	assert.Equal(t, []string{"0.", ".*"}, gridLines(t, frame, 2))
}

func TestRendererWritesClearAndFrame(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, config.LayoutZQSD, false)
	s := types.Snapshot{GridSize: 2, Body: []types.Point{{X: 1, Y: 0}}, Food: types.Point{X: 0, Y: 1}, Score: 1}

	require.NoError(t, r.Render(s))
	require.NoError(t, r.Render(s))

	assert.Equal(t, 2, strings.Count(out.String(), clearScreen))
	assert.Contains(t, out.String(), ".0"+lineBreak+"*."+lineBreak)
	assert.Contains(t, out.String(), "ctrl+c")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRendererPropagatesWriteError(t *testing.T) {
	r := NewRenderer(failingWriter{}, config.LayoutZQSD, false)

	err := r.Render(types.Snapshot{GridSize: 1, Body: []types.Point{{}}, Score: 1})

	assert.ErrorContains(t, err, "broken pipe")
}

func TestLegendPerLayout(t *testing.T) {
	zqsd := Legend(config.LayoutZQSD)
	assert.Contains(t, zqsd, "      z |   Up")
	assert.Contains(t, zqsd, "      a |   Quit")

	wasd := Legend(config.LayoutWASD)
	assert.Contains(t, wasd, "      w |   Up")
	assert.Contains(t, wasd, "      q |   Quit")
}

func TestFrameSize(t *testing.T) {
	legend := Legend(config.LayoutZQSD)

	w, h := FrameSize(30, legend)
	assert.Equal(t, 30, w)
	assert.Equal(t, 30+1+strings.Count(legend, "\n"), h)

	w, _ = FrameSize(5, legend)
	assert.Equal(t, len("Score: 9999  Time: 59m59s"), w)
}

func TestEpilogue(t *testing.T) {
	lost := engine.Result{Reason: engine.ReasonLost, Score: 7, Ticks: 40, Elapsed: 8 * time.Second}
	quit := engine.Result{Reason: engine.ReasonQuit, Score: 3, Ticks: 12, Elapsed: 2400 * time.Millisecond}

	assert.Contains(t, Epilogue(lost), `\____|`)
	assert.Contains(t, Epilogue(lost), "Score: 7  Time: 8s  Ticks: 40")
	assert.NotContains(t, Epilogue(quit), `\____|`)
	assert.Contains(t, Epilogue(quit), "Score: 3  Time: 2.4s")
}

func TestGameOverBannerText(t *testing.T) {
	lines := strings.Split(GameOverBanner(), lineBreak)

	require.Len(t, lines, 6)
	assert.Equal(t, "| |  _ / _` | '_ ` _ \\ / _ \\ | | \\ \\ / / _ \\ '__|", lines[2])
	assert.Empty(t, lines[5])
}
