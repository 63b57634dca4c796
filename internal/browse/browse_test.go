package browse

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_clean "github.com/lakshaymaurya-felt/fastclean/internal/clean/mocks"
	"github.com/lakshaymaurya-felt/fastclean/internal/config"
	"github.com/lakshaymaurya-felt/fastclean/internal/ui"
)

const home = "/Users/dev"

func newTestModel(t *testing.T) (Model, *mock_clean.MockSizeProbe, *mock_clean.MockRemover) {
	t.Helper()
	ctrl := gomock.NewController(t)
	probe := mock_clean.NewMockSizeProbe(ctrl)
	remover := mock_clean.NewMockRemover(ctrl)

	m := NewModel(context.Background(), Options{
		Probe:   probe,
		Remover: remover,
		Home:    home,
		Theme:   ui.NewTheme(&bytes.Buffer{}, false),
	})
	return m, probe, remover
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// sizeAll marks every row as sized without running probes.
func sizeAll(t *testing.T, m Model) Model {
	t.Helper()
	for i := range m.rows {
		m, _ = update(t, m, sizeMsg{index: i, bytes: int64(i+1) * 1024})
	}
	require.False(t, m.busy)
	return m
}

func folderPath(f config.CacheFolder) string {
	return config.ExpandPaths(f.Paths(), home)[0]
}

var (
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyQuit      = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func TestNewModelListsConcreteFolders(t *testing.T) {
	m, _, _ := newTestModel(t)

	require.Len(t, m.rows, len(config.All.Concrete()))
	for i, f := range config.All.Concrete() {
		assert.Equal(t, f, m.rows[i].folder)
		assert.Equal(t, rowPending, m.rows[i].state)
	}
	assert.True(t, m.busy, "the first probe starts with Init")
}

func TestProbeRowSumsKilobytes(t *testing.T) {
	m, probe, _ := newTestModel(t)
	paths := []string{"/a", "/b", "/c"}

	gomock.InOrder(
		probe.EXPECT().KilobyteSize(gomock.Any(), "/a").Return("1024\t/a\n", nil),
		probe.EXPECT().KilobyteSize(gomock.Any(), "/b").Return("", errors.New("du failed")),
		probe.EXPECT().KilobyteSize(gomock.Any(), "/c").Return("2048\t/c\n", nil),
	)

	msg := probeRow(m.ctx, probe, 2, paths)().(sizeMsg)
	assert.Equal(t, 2, msg.index)
	assert.Equal(t, int64(3072*1024), msg.bytes)
	assert.Error(t, msg.err)
}

func TestRowsAreSizedOneAtATime(t *testing.T) {
	m, probe, _ := newTestModel(t)
	second := folderPath(config.All.Concrete()[1])
	probe.EXPECT().KilobyteSize(gomock.Any(), second).Return("4\t"+second+"\n", nil)

	m, cmd := update(t, m, sizeMsg{index: 0, bytes: 1024})
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Equal(t, rowSized, m.rows[0].state)
	assert.Equal(t, rowPending, m.rows[1].state)

	msg := cmd().(sizeMsg)
	assert.Equal(t, 1, msg.index)
	assert.Equal(t, int64(4096), msg.bytes)
}

func TestLastSizeLeavesModelIdle(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = sizeAll(t, m)

	assert.Equal(t, int64(21*1024), m.Total())
	assert.Contains(t, m.View(), "total 21 KiB")
}

func TestCursorMovement(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, keyUp)
	assert.Equal(t, 0, m.cursor)

	for range len(m.rows) + 2 {
		m, _ = update(t, m, keyDown)
	}
	assert.Equal(t, len(m.rows)-1, m.cursor)

	m, _ = update(t, m, keyUp)
	assert.Equal(t, len(m.rows)-2, m.cursor)
}

func TestTwoKeyDelete(t *testing.T) {
	m, probe, remover := newTestModel(t)
	m = sizeAll(t, m)
	m, _ = update(t, m, keyDown)

	target := folderPath(config.All.Concrete()[1])

	m, cmd := update(t, m, keyBackspace)
	assert.Nil(t, cmd)
	assert.True(t, m.confirmDelete)
	assert.Contains(t, m.View(), "Press Enter to delete")

	remover.EXPECT().Remove(gomock.Any(), target).Return("", nil)
	m, cmd = update(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, rowDeleting, m.rows[1].state)
	assert.Contains(t, m.View(), "deleting")

	result := cmd().(deleteResultMsg)
	assert.Equal(t, 1, result.index)
	assert.NoError(t, result.err)

	probe.EXPECT().KilobyteSize(gomock.Any(), target).Return("0\t"+target+"\n", nil)
	m, cmd = update(t, m, result)
	require.NotNil(t, cmd, "the deleted row is sized again")
	assert.Contains(t, m.View(), "simulators deleted")

	resized := cmd().(sizeMsg)
	assert.Equal(t, 1, resized.index)
	assert.Zero(t, resized.bytes)
}

func TestDeleteCancelledByOtherKey(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = sizeAll(t, m)

	m, _ = update(t, m, keyBackspace)
	m, cmd := update(t, m, keyDown)

	assert.Nil(t, cmd)
	assert.False(t, m.confirmDelete)
	assert.Equal(t, 0, m.cursor, "the cancelling key is not also applied")
	assert.Contains(t, m.View(), "deletion cancelled")
}

func TestQuitWhileConfirmingDelete(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyQuit, {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m, _, _ := newTestModel(t)
			m = sizeAll(t, m)

			m, _ = update(t, m, keyBackspace)
			require.True(t, m.confirmDelete)

			m, cmd := update(t, m, k)
			require.NotNil(t, cmd, "a single quit key exits")
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestDeleteWaitsForProbe(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, keyBackspace)
	assert.Nil(t, cmd)
	assert.False(t, m.confirmDelete)
	assert.Contains(t, m.View(), "wait for the current operation")
}

func TestDeleteFailureIsReported(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = sizeAll(t, m)

	m, _ = update(t, m, deleteResultMsg{index: 0, failed: 1, err: errors.New("rm -rf failed (exit code 1)")})

	view := m.View()
	assert.Contains(t, view, "rm -rf failed")
	assert.Contains(t, view, "archives: 1 path(s) could not be removed")
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, keyQuit)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestPrintStatic(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mock_clean.NewMockSizeProbe(ctrl)

	var calls []any
	for _, f := range config.All.Concrete() {
		p := folderPath(f)
		calls = append(calls, probe.EXPECT().KilobyteSize(gomock.Any(), p).Return("1024\t"+p+"\n", nil))
	}
	gomock.InOrder(calls...)

	var out bytes.Buffer
	PrintStatic(context.Background(), &out, Options{
		Probe: probe,
		Home:  home,
		Theme: ui.NewTheme(&out, false),
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, len(config.All.Concrete())+4)
	assert.Equal(t, "Xcode caches", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "archives "))
	assert.Contains(t, lines[2], "1.0 MiB")
	assert.Equal(t, "Total: 6.0 MiB", lines[len(lines)-1])
}

func TestRunFallsBackToStaticOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mock_clean.NewMockSizeProbe(ctrl)
	probe.EXPECT().KilobyteSize(gomock.Any(), gomock.Any()).Return("", nil).Times(len(config.All.Concrete()))

	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Probe: probe,
		Home:  home,
		Theme: ui.NewTheme(&out, false),
		In:    strings.NewReader(""),
		Out:   &out,
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Total: 0 B")
}
