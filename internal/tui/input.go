package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
)

// setupInputs configures the filter and page-size text inputs.
func (m *BrokerList) setupInputs() {
	m.filterInput = textinput.New()
	m.filterInput.Prompt = "/ "
	m.filterInput.Placeholder = "address or rack"
	m.filterInput.Cursor.Style = CursorStyle
	m.filterInput.CharLimit = 128
	m.filterInput.Width = 40

	m.sizeInput = textinput.New()
	m.sizeInput.Prompt = "Page size: "
	m.sizeInput.Placeholder = strconv.Itoa(m.page.PageSize)
	m.sizeInput.Cursor.Style = CursorStyle
	m.sizeInput.CharLimit = 5
	m.sizeInput.Validate = isNumber // Basic validation
}

// focusInput switches to the given input mode and focuses its field.
func (m *BrokerList) focusInput(mode inputMode) {
	m.mode = mode
	m.err = nil
	switch mode {
	case inputFilter:
		m.filterInput.SetValue(m.filterText)
		m.filterInput.CursorEnd()
		m.filterInput.Focus()
		m.filterInput.PromptStyle = FocusedStyle
		m.filterInput.TextStyle = FocusedStyle
	case inputPageSize:
		m.sizeInput.SetValue("")
		m.sizeInput.Placeholder = strconv.Itoa(m.page.PageSize)
		m.sizeInput.Focus()
		m.sizeInput.PromptStyle = FocusedStyle
		m.sizeInput.TextStyle = FocusedStyle
	}
	m.table.Blur()
}

// blurInputs leaves input mode and gives focus back to the table.
func (m *BrokerList) blurInputs() {
	m.mode = inputNone
	m.filterInput.Blur()
	m.filterInput.PromptStyle = NoStyle
	m.filterInput.TextStyle = NoStyle
	m.sizeInput.Blur()
	m.sizeInput.PromptStyle = NoStyle
	m.sizeInput.TextStyle = NoStyle
	m.table.Focus()
}

// isNumber is a validation function for textinput, ensuring input is numeric.
func isNumber(s string) error {
	if s == "" {
		return nil // Allow empty while typing
	}
	_, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}

// parsePageSize validates the page-size input value.
func parsePageSize(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("page size cannot be empty")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid page size %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("page size must be positive")
	}
	return n, nil
}
