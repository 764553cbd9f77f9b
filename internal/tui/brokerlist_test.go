package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/adtyap26/kafka-broker-view/internal/brokers"
	"github.com/adtyap26/kafka-broker-view/internal/config"
	"github.com/adtyap26/kafka-broker-view/internal/prefs"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCluster struct {
	snap   *config.ClusterSnapshot
	forced []bool
}

func (f *fakeCluster) Refresh(ctx context.Context, force bool) error {
	f.forced = append(f.forced, force)
	return nil
}

func (f *fakeCluster) Snapshot() *config.ClusterSnapshot {
	return f.snap
}

// countingStore records how often the page size preference is written.
type countingStore struct {
	prefs.MemoryStore
	writes int
}

func (c *countingStore) SetBrokerListPageSize(size int) error {
	c.writes++
	return c.MemoryStore.SetBrokerListPageSize(size)
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func twoBrokers() *config.ClusterSnapshot {
	return &config.ClusterSnapshot{
		ControllerID: 2,
		Brokers: []config.Broker{
			{BrokerID: 2, Address: "b:9092", LogDirSize: 2000},
			{BrokerID: 1, Address: "a:9092", LogDirSize: 1000},
		},
	}
}

func manyBrokers(n int) *config.ClusterSnapshot {
	snap := &config.ClusterSnapshot{ControllerID: 1}
	for i := 1; i <= n; i++ {
		snap.Brokers = append(snap.Brokers, config.Broker{
			BrokerID:   int32(i),
			Address:    fmt.Sprintf("kafka-%d:9092", i),
			LogDirSize: int64(i * 1000),
		})
	}
	return snap
}

// newActiveList builds an activated broker list that has received snap.
func newActiveList(t *testing.T, snap *config.ClusterSnapshot, store prefs.Store) (*BrokerList, *fakeCluster) {
	t.Helper()
	cluster := &fakeCluster{}
	m := NewBrokerList(cluster, store, config.DefaultPageSize, testLogger())
	m.Activate(&PageHost{}, &RefreshSignal{})
	cluster.snap = snap
	m.Update(snapshotMsg{snap: snap})
	return m, cluster
}

func columnTitles(m *BrokerList) []string {
	var titles []string
	for _, c := range m.table.Columns() {
		titles = append(titles, c.Title)
	}
	return titles
}

func TestBrokerListLoadingState(t *testing.T) {
	m := NewBrokerList(&fakeCluster{}, &prefs.MemoryStore{}, config.DefaultPageSize, testLogger())
	m.Activate(&PageHost{}, &RefreshSignal{})

	assert.Contains(t, m.View(), "Loading cluster info")
	assert.NotContains(t, m.View(), "Address")
}

func TestBrokerListActivateRegistersPage(t *testing.T) {
	cluster := &fakeCluster{}
	m := NewBrokerList(cluster, &prefs.MemoryStore{}, config.DefaultPageSize, testLogger())
	host := &PageHost{}

	cmd := m.Activate(host, &RefreshSignal{})
	require.NotNil(t, cmd)
	assert.Equal(t, "Brokers", host.Title())
	assert.Equal(t, []Breadcrumb{{Label: "Brokers", Path: "/brokers"}}, host.Breadcrumbs())

	msg := m.refresh(false)()
	assert.IsType(t, snapshotMsg{}, msg)
	assert.Equal(t, []bool{false}, cluster.forced)
}

func TestBrokerListEmptySnapshot(t *testing.T) {
	m, _ := newActiveList(t, &config.ClusterSnapshot{ControllerID: 1}, &prefs.MemoryStore{})

	view := m.View()
	assert.Contains(t, view, "No brokers")
	assert.NotContains(t, view, "Address")
}

func TestBrokerListEndToEnd(t *testing.T) {
	m, _ := newActiveList(t, twoBrokers(), &prefs.MemoryStore{})

	assert.Equal(t, []string{"ID ▲", "Address", "Size"}, columnTitles(m), "no rack column, id sorted ascending")

	rows := m.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "2 "+brokers.ControllerMarker, rows[1][0])
	assert.Equal(t, "1.0 kB", rows[0][2])

	view := m.View()
	assert.Contains(t, view, "ControllerID")
	assert.Contains(t, view, "Broker Count")
}

func TestBrokerListControllerTooltip(t *testing.T) {
	m, _ := newActiveList(t, twoBrokers(), &prefs.MemoryStore{})

	m.table.SetCursor(0)
	assert.NotContains(t, m.View(), brokers.ControllerTooltip)

	m.table.SetCursor(1)
	assert.Contains(t, m.View(), brokers.ControllerTooltip)
}

func TestBrokerListUnknownController(t *testing.T) {
	snap := twoBrokers()
	snap.ControllerID = 99
	m, _ := newActiveList(t, snap, &prefs.MemoryStore{})

	for _, r := range m.table.Rows() {
		assert.NotContains(t, r[0], brokers.ControllerMarker)
	}
}

func TestBrokerListRackColumnFollowsSnapshot(t *testing.T) {
	m, _ := newActiveList(t, twoBrokers(), &prefs.MemoryStore{})
	assert.Len(t, m.table.Columns(), 3)

	withRack := twoBrokers()
	withRack.Brokers[0].Rack = "az1"
	m.Update(snapshotMsg{snap: withRack})
	assert.Len(t, m.table.Columns(), 4)
	assert.Equal(t, "Rack", m.table.Columns()[3].Title)

	m.Update(runes("4"))
	assert.Equal(t, brokers.SortState{Column: brokers.ColumnRack, Order: brokers.Ascending}, m.sort)

	// Rack disappears: sort falls back to id
	m.Update(snapshotMsg{snap: twoBrokers()})
	assert.Len(t, m.table.Columns(), 3)
	assert.Equal(t, brokers.DefaultSort(), m.sort)
}

func TestBrokerListSortBySize(t *testing.T) {
	snap := &config.ClusterSnapshot{Brokers: []config.Broker{
		{BrokerID: 1, Address: "a:9092", LogDirSize: 500},
		{BrokerID: 2, Address: "b:9092", LogDirSize: 100},
		{BrokerID: 3, Address: "c:9092", LogDirSize: config.UnknownSize},
	}}
	m, _ := newActiveList(t, snap, &prefs.MemoryStore{})

	m.Update(runes("3"))
	rows := m.table.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"2", "1", "3"}, []string{rows[0][0], rows[1][0], rows[2][0]})
	assert.Equal(t, brokers.NotAvailable, rows[2][2])
	assert.Equal(t, "Size ▲", m.table.Columns()[2].Title)
	assert.Equal(t, "ID", m.table.Columns()[0].Title)
}

func TestBrokerListPageSizeInput(t *testing.T) {
	store := &prefs.MemoryStore{}
	m, _ := newActiveList(t, manyBrokers(30), store)
	assert.Len(t, m.table.Rows(), 30)

	m.Update(runes("p"))
	require.True(t, m.Capturing())
	m.Update(runes("2"))
	m.Update(runes("5"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Capturing())
	assert.Equal(t, 25, m.page.PageSize)
	assert.Len(t, m.table.Rows(), 25)
	assert.Equal(t, 25, store.BrokerListPageSize())

	m.Update(runes("l"))
	assert.Len(t, m.table.Rows(), 5)
	assert.Equal(t, "26", m.table.Rows()[0][0])
}

func TestBrokerListPageSizeInputRejectsInvalid(t *testing.T) {
	store := &prefs.MemoryStore{}
	m, _ := newActiveList(t, manyBrokers(3), store)

	m.Update(runes("p"))
	m.Update(runes("0"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Capturing(), "input stays open on error")
	assert.Error(t, m.err)
	assert.Equal(t, 0, store.BrokerListPageSize())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Capturing())
	assert.Equal(t, config.DefaultPageSize, m.page.PageSize)
}

func TestBrokerListPageSizeOptions(t *testing.T) {
	store := &prefs.MemoryStore{}
	m, _ := newActiveList(t, manyBrokers(60), store)

	m.Update(runes("["))
	assert.Equal(t, 50, m.page.PageSize)
	assert.Equal(t, 50, store.BrokerListPageSize())
	assert.Len(t, m.table.Rows(), 50)

	m.Update(runes("]"))
	assert.Equal(t, 100, store.BrokerListPageSize())
	assert.Len(t, m.table.Rows(), 60)
}

func TestBrokerListSeedsPageSizeFromPrefs(t *testing.T) {
	store := &prefs.MemoryStore{}
	require.NoError(t, store.SetBrokerListPageSize(10))

	m, _ := newActiveList(t, manyBrokers(15), store)
	assert.Equal(t, 10, m.page.PageSize)
	assert.Len(t, m.table.Rows(), 10)
}

func TestBrokerListFilter(t *testing.T) {
	snap := twoBrokers()
	snap.Brokers = append(snap.Brokers, config.Broker{BrokerID: 3, Address: "10.0.0.5:9092", Rack: "az1"})
	m, _ := newActiveList(t, snap, &prefs.MemoryStore{})

	m.Update(runes("/"))
	require.True(t, m.Capturing())
	for _, r := range "10.0" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, "10.0", m.filterText)
	require.Len(t, m.filtered, 1)
	assert.Equal(t, int32(3), m.filtered[0].BrokerID)
	assert.Len(t, m.table.Rows(), 1)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Capturing())
	assert.Contains(t, m.View(), `Filter: "10.0"`)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "", m.filterText)
	assert.Len(t, m.table.Rows(), 3)
}

func TestBrokerListFilterWithoutMatches(t *testing.T) {
	store := &prefs.MemoryStore{}
	require.NoError(t, store.SetBrokerListPageSize(10))
	m, _ := newActiveList(t, manyBrokers(30), store)
	assert.Contains(t, m.paginationView(), "Page 1/3")

	m.Update(runes("/"))
	for _, r := range "zzz" {
		m.Update(runes(string(r)))
	}
	assert.Empty(t, m.table.Rows())
	assert.Equal(t, 1, m.paginator.TotalPages)
	assert.Equal(t, "Page 1/1 • 0 of 0 • 10 / page", m.paginationView())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.paginationView(), "Page 1/3")
}

func TestBrokerListUnchangedPageSizeNotPersisted(t *testing.T) {
	store := &countingStore{}
	require.NoError(t, store.MemoryStore.SetBrokerListPageSize(10))
	m, _ := newActiveList(t, manyBrokers(30), store)

	m.Update(runes("["))
	assert.Equal(t, 10, m.page.PageSize)
	assert.Equal(t, 0, store.writes)

	m.Update(runes("]"))
	assert.Equal(t, 25, m.page.PageSize)
	assert.Equal(t, 1, store.writes)

	m.Update(runes("p"))
	m.sizeInput.SetValue("25")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Capturing())
	assert.Equal(t, 1, store.writes)

	m.page.PageSize = 250
	m.Update(runes("]"))
	assert.Equal(t, 1, store.writes)
}

func TestBrokerListSizeChangerHidden(t *testing.T) {
	store := &countingStore{}
	m, _ := newActiveList(t, manyBrokers(60), store)
	assert.Contains(t, m.View(), "[/] page size")

	m.SetSizeChanger(false)
	m.Update(runes("["))
	m.Update(runes("]"))
	m.Update(runes("p"))

	assert.False(t, m.Capturing())
	assert.Equal(t, config.DefaultPageSize, m.page.PageSize)
	assert.Equal(t, 0, store.writes)
	assert.NotContains(t, m.View(), "[/] page size")
	assert.NotContains(t, m.View(), "Page size:")

	m.SetSizeChanger(true)
	m.Update(runes("["))
	assert.Equal(t, 50, m.page.PageSize)
}

func TestBrokerListSpinnerStopsWhenIdle(t *testing.T) {
	m, _ := newActiveList(t, twoBrokers(), &prefs.MemoryStore{})
	require.False(t, m.refreshing)

	assert.Nil(t, m.Update(spinner.TickMsg{}))
	assert.False(t, m.ticking)

	// A refresh restarts the tick loop and keeps it going until it ends
	require.NotNil(t, m.refresh(true))
	assert.True(t, m.ticking)
	assert.NotNil(t, m.Update(m.spinner.Tick()))

	m.Update(snapshotMsg{snap: twoBrokers()})
	assert.Nil(t, m.Update(m.spinner.Tick()))
}

func TestBrokerListSpinnerTicksWhileLoading(t *testing.T) {
	cluster := &fakeCluster{}
	m := NewBrokerList(cluster, &prefs.MemoryStore{}, config.DefaultPageSize, testLogger())
	m.Activate(&PageHost{}, &RefreshSignal{})

	// Failed first load: still no snapshot, the loading view keeps spinning
	m.Update(snapshotMsg{})
	assert.NotNil(t, m.Update(m.spinner.Tick()))
}

func TestBrokerListIgnoresSnapshotAfterDeactivate(t *testing.T) {
	signal := &RefreshSignal{}
	cluster := &fakeCluster{}
	m := NewBrokerList(cluster, &prefs.MemoryStore{}, config.DefaultPageSize, testLogger())
	m.Activate(&PageHost{}, signal)

	m.Deactivate()
	m.Update(snapshotMsg{snap: twoBrokers()})

	assert.Nil(t, m.snapshot)
	assert.Nil(t, signal.Fire(), "handler must be unregistered on teardown")
}

func TestAppRefreshKeyForcesRefresh(t *testing.T) {
	cluster := &fakeCluster{snap: twoBrokers()}
	page := NewBrokerList(cluster, &prefs.MemoryStore{}, config.DefaultPageSize, testLogger())
	app := NewApp("Kafka Broker View", page)
	app.Init()

	_, cmd := app.Update(runes("r"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, []bool{true}, cluster.forced)

	app.Update(msg)
	assert.Len(t, page.table.Rows(), 2)
	assert.Contains(t, app.View(), "Brokers")
}

func TestAppRefreshKeyIgnoredWhileTyping(t *testing.T) {
	cluster := &fakeCluster{snap: twoBrokers()}
	page := NewBrokerList(cluster, &prefs.MemoryStore{}, config.DefaultPageSize, testLogger())
	app := NewApp("Kafka Broker View", page)
	app.Init()
	app.Update(snapshotMsg{snap: cluster.snap})

	app.Update(runes("/"))
	app.Update(runes("r"))
	assert.Empty(t, cluster.forced)
	assert.Equal(t, "r", page.filterText)
}

func TestAppQuitDeactivatesPage(t *testing.T) {
	page := NewBrokerList(&fakeCluster{}, &prefs.MemoryStore{}, config.DefaultPageSize, testLogger())
	app := NewApp("Kafka Broker View", page)
	app.Init()

	_, cmd := app.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.False(t, page.active)
	assert.Nil(t, app.signal.Fire())
}

func TestRefreshSignalRegistration(t *testing.T) {
	var s RefreshSignal
	assert.Nil(t, s.Fire())

	calls := 0
	first := s.Register(func() tea.Cmd { calls++; return nil })
	s.Fire()
	assert.Equal(t, 1, calls)

	second := 0
	unregisterSecond := s.Register(func() tea.Cmd { second++; return nil })
	first() // stale unregister must not remove the new handler
	s.Fire()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, second)

	unregisterSecond()
	s.Fire()
	assert.Equal(t, 1, second)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, twoBrokers()))

	out := buf.String()
	assert.Contains(t, out, "Controller: 2")
	assert.Contains(t, out, "a:9092")
	assert.Contains(t, out, "2 "+brokers.ControllerMarker)
	assert.NotContains(t, out, "Rack")

	buf.Reset()
	require.NoError(t, RenderText(&buf, &config.ClusterSnapshot{}))
	assert.Equal(t, "No brokers\n", buf.String())

	assert.Error(t, RenderText(&buf, nil))
}
