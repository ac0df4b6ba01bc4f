package terminal

import (
	"fmt"
	"strings"
)

const (
	logFieldData = "data"
)

var (
	listFields = []string{logFieldMessage, logFieldData}
)

type list struct {
	message string
	data    []string
}

func newList(message string, data []interface{}) list {
	items := make([]string, 0, len(data))
	for _, item := range data {
		items = append(items, parseValue(item))
	}
	return list{message, items}
}

func (l list) Message() (string, error) {
	var sb strings.Builder
	sb.WriteString(l.message)
	for _, item := range l.data {
		sb.WriteString(fmt.Sprintf("\n%s%s", Indent, item))
	}
	return sb.String(), nil
}

func (l list) Payload() ([]string, map[string]interface{}, error) {
	return listFields, map[string]interface{}{
		logFieldMessage: l.message,
		logFieldData:    l.data,
	}, nil
}
