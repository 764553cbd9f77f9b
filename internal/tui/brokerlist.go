package tui

import (
	"context"

	"github.com/adtyap26/kafka-broker-view/internal/brokers"
	"github.com/adtyap26/kafka-broker-view/internal/config"
	"github.com/adtyap26/kafka-broker-view/internal/prefs"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// ClusterClient is the cluster metadata collaborator used by the broker list.
type ClusterClient interface {
	Refresh(ctx context.Context, force bool) error
	Snapshot() *config.ClusterSnapshot
}

// inputMode selects which text input, if any, has focus.
type inputMode int

const (
	inputNone inputMode = iota
	inputFilter
	inputPageSize
)

// snapshotMsg carries the collaborator's snapshot after a refresh finished.
type snapshotMsg struct {
	snap *config.ClusterSnapshot
}

// BrokerList is the broker inventory page.
type BrokerList struct {
	cluster ClusterClient
	prefs   prefs.Store
	log     *logrus.Entry
	keys    listKeys

	active     bool
	unregister func()
	refreshing bool
	ticking    bool // spinner tick loop running

	// Derived from snapshot on every change
	snapshot *config.ClusterSnapshot
	filtered []config.Broker
	columns  []brokers.ColumnSpec
	rows     []brokers.Row

	filterText string
	sort       brokers.SortState
	page       brokers.PageConfig

	mode        inputMode
	filterInput textinput.Model
	sizeInput   textinput.Model
	err         error // page size input error

	table     table.Model
	paginator paginator.Model
	spinner   spinner.Model

	width, height int
}

// NewBrokerList creates the page. The stored page-size preference seeds the
// pagination; defaultPageSize is used when none is stored.
func NewBrokerList(cluster ClusterClient, store prefs.Store, defaultPageSize int, log *logrus.Entry) *BrokerList {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = FocusedStyle

	p := paginator.New()
	p.Type = paginator.Arabic

	t := table.New(table.WithFocused(true))
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(ts)

	m := &BrokerList{
		cluster:   cluster,
		prefs:     store,
		log:       log,
		keys:      defaultListKeys(),
		sort:      brokers.DefaultSort(),
		page:      brokers.NewPageConfig(store.BrokerListPageSize(), defaultPageSize, true),
		table:     t,
		paginator: p,
		spinner:   s,
	}
	m.setupInputs()
	m.recompute()
	return m
}

// Activate implements Page.
func (m *BrokerList) Activate(host *PageHost, signal *RefreshSignal) tea.Cmd {
	host.SetTitle("Brokers")
	host.AddBreadcrumb("Brokers", "/brokers")

	m.active = true
	m.unregister = signal.Register(func() tea.Cmd {
		return m.refresh(true)
	})

	// Show whatever the collaborator already has while the refresh runs
	m.snapshot = m.cluster.Snapshot()
	m.recompute()

	return m.refresh(false)
}

// Deactivate implements Page.
func (m *BrokerList) Deactivate() {
	m.active = false
	if m.unregister != nil {
		m.unregister()
		m.unregister = nil
	}
}

// Capturing implements Page.
func (m *BrokerList) Capturing() bool {
	return m.mode != inputNone
}

// refresh asks the collaborator for a snapshot. Failures are the
// collaborator's concern; the page only ever sees the resulting snapshot.
func (m *BrokerList) refresh(force bool) tea.Cmd {
	m.refreshing = true
	cluster := m.cluster
	fetch := func() tea.Msg {
		_ = cluster.Refresh(context.Background(), force)
		return snapshotMsg{snap: cluster.Snapshot()}
	}
	if m.ticking {
		return fetch
	}
	m.ticking = true
	return tea.Batch(m.spinner.Tick, fetch)
}

// setResult is the filter harness's result sink.
func (m *BrokerList) setResult(filtered []config.Broker) {
	m.filtered = filtered
}

// recompute rebuilds every piece of derived state from the current snapshot,
// filter, sort and pagination.
func (m *BrokerList) recompute() {
	m.columns = brokers.Columns(m.snapshot)
	if m.sort.Column == brokers.ColumnRack && !brokers.HasRack(m.snapshot) {
		m.sort = brokers.DefaultSort()
	}

	var all []config.Broker
	if m.snapshot != nil {
		all = m.snapshot.Brokers
	}
	brokers.Apply(all, m.filterText, brokers.IsMatch, m.setResult)

	sorted := brokers.Sort(m.filtered, m.sort)
	m.page = m.page.Clamp(len(sorted))
	start, end := m.page.Bounds(len(sorted))
	m.rows = brokers.BuildRows(m.snapshot, sorted[start:end], m.columns)

	m.paginator.PerPage = m.page.PageSize
	m.paginator.TotalPages = m.page.TotalPages(len(sorted))
	m.paginator.Page = m.page.Page

	m.syncTable()
}

// syncTable pushes columns and rows into the table widget. Rows are cleared
// first so the widget never renders rows wider than its columns.
func (m *BrokerList) syncTable() {
	cols := make([]table.Column, 0, len(m.columns))
	for _, c := range m.columns {
		title := c.Title
		if ind := m.sort.OrderFor(c.Column).Indicator(); ind != "" {
			title += " " + ind
		}
		cols = append(cols, table.Column{Title: title, Width: c.Width})
	}

	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		rows = append(rows, table.Row(r.Cells))
	}

	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetHeight(m.tableHeight())
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// tableHeight fits the current page into the window, header included.
func (m *BrokerList) tableHeight() int {
	const header = 2
	h := len(m.rows) + header
	if h < header+1 {
		h = header + 1
	}
	if m.height > 0 {
		// Title, breadcrumbs, stats, paginator, legend and help
		avail := m.height - 16
		if avail < header+3 {
			avail = header + 3
		}
		if h > avail {
			h = avail
		}
	}
	return h
}

// SetSizeChanger shows or hides the page size keys. Hidden keys are neither
// matched nor listed in the help line.
func (m *BrokerList) SetSizeChanger(show bool) {
	m.page.ShowSizeChanger = show
	m.keys.SmallerPage.SetEnabled(show)
	m.keys.LargerPage.SetEnabled(show)
	m.keys.PageSize.SetEnabled(show)
}

// setPageSize applies a user-chosen page size and persists it. Choosing the
// current size is a no-op.
func (m *BrokerList) setPageSize(size int) {
	if size <= 0 || size == m.page.PageSize {
		return
	}
	m.page = m.page.WithPageSize(size, len(m.filtered))
	if err := m.prefs.SetBrokerListPageSize(size); err != nil {
		m.log.WithError(err).Warn("failed to persist broker list page size")
	}
	m.recompute()
}

// selectedRow returns the row under the table cursor.
func (m *BrokerList) selectedRow() (brokers.Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return brokers.Row{}, false
	}
	return m.rows[i], true
}
