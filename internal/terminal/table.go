package terminal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	logFieldHeaders = "headers"

	// maxCellWidth bounds the width of a table cell in text output
	maxCellWidth = 48
	ellipsis     = "…"
)

// set of exported spacing options
const (
	Indent = "  "
	Gutter = "  "
)

var (
	tableFields = []string{logFieldMessage, logFieldHeaders, logFieldData}
)

type table struct {
	message string
	headers []string
	rows    []map[string]string
	widths  map[string]int
}

func newTable(message string, headers []string, data []map[string]interface{}) table {
	t := table{
		message: message,
		headers: headers,
		rows:    make([]map[string]string, 0, len(data)),
		widths:  make(map[string]int, len(headers)),
	}

	for _, header := range headers {
		t.widths[header] = utf8.RuneCountInString(header)
	}

	for _, row := range data {
		if len(row) == 0 {
			continue
		}
		r := make(map[string]string, len(headers))
		for _, header := range headers {
			value := parseValue(row[header])
			if width := utf8.RuneCountInString(truncate(value)); width > t.widths[header] {
				t.widths[header] = width
			}
			r[header] = value
		}
		t.rows = append(t.rows, r)
	}
	return t
}

func (t table) Message() (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}

	lines := []string{t.message, t.headerString(), t.dividerString()}
	for _, row := range t.rows {
		lines = append(lines, t.rowString(row))
	}
	return strings.Join(lines, "\n"), nil
}

func (t table) Payload() ([]string, map[string]interface{}, error) {
	if err := t.validate(); err != nil {
		return nil, nil, err
	}
	return tableFields, map[string]interface{}{
		logFieldMessage: t.message,
		logFieldHeaders: t.headers,
		logFieldData:    t.rows,
	}, nil
}

func (t table) validate() error {
	if len(t.headers) == 0 {
		return errors.New("cannot create a table without headers")
	}
	return nil
}

func (t table) headerString() string {
	bold := color.New(color.Bold).SprintFunc()

	cells := make([]string, len(t.headers))
	for i, header := range t.headers {
		cells[i] = bold(header) + padding(header, t.widths[header])
	}
	return Indent + strings.Join(cells, Gutter)
}

func (t table) dividerString() string {
	cells := make([]string, len(t.headers))
	for i, header := range t.headers {
		cells[i] = strings.Repeat("-", t.widths[header])
	}
	return Indent + strings.Join(cells, Gutter)
}

func (t table) rowString(row map[string]string) string {
	cells := make([]string, len(t.headers))
	for i, header := range t.headers {
		value := truncate(row[header])
		cells[i] = value + padding(value, t.widths[header])
	}
	return strings.TrimRight(Indent+strings.Join(cells, Gutter), " ")
}

func padding(value string, width int) string {
	if n := width - utf8.RuneCountInString(value); n > 0 {
		return strings.Repeat(" ", n)
	}
	return ""
}

// truncate shortens a value to a single line of at most maxCellWidth runes
func truncate(value string) string {
	if i := strings.IndexAny(value, "\r\n"); i >= 0 {
		value = value[:i] + ellipsis
	}
	if utf8.RuneCountInString(value) <= maxCellWidth {
		return value
	}
	runes := []rune(value)
	return string(runes[:maxCellWidth-1]) + ellipsis
}

func parseValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
