package query

import (
	"strconv"
	"strings"
)

const (
	// DefaultTake is the page size used when the caller does not provide a usable one.
	DefaultTake = 10
	// DefaultPage is the 1-based page used when the caller does not provide a usable one.
	DefaultPage = 1
)

// Page captures the caller's pagination intent. Page is 1-based.
type Page struct {
	Page int
	Take int
}

// Window is the store-level shape of a Page.
type Window struct {
	Limit  int
	Offset int
}

// ParsePage normalises raw query-string values into a Page. It never fails:
// absent or unparseable values fall back to the defaults, and a take that is
// not positive is treated as absent.
func ParsePage(rawPage, rawTake string) Page {
	return Page{
		Page: parseOptionalInt(rawPage, DefaultPage),
		Take: positiveOr(parseOptionalInt(rawTake, DefaultTake), DefaultTake),
	}
}

// Window converts the page into a limit/offset pair. Any page <= 0 behaves as page 1.
func (p Page) Window() Window {
	take := positiveOr(p.Take, DefaultTake)

	index := 0
	if p.Page > 0 {
		index = p.Page - 1
	}

	return Window{Limit: take, Offset: index * take}
}

func parseOptionalInt(raw string, fallback int) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return fallback
	}
	return value
}

func positiveOr(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
