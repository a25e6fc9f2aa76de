package console

import (
	"fmt"
	"strings"
)

type Format uint8

const (
	Text Format = iota
	JSON
)

var ErrBadFormat = fmt.Errorf("output format must be one of 'text', 'json'")

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return 0, ErrBadFormat
	}
}
