package article

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// timeLayouts are tried in order for string timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON accepts an id that is a string or a number, and a
// createdAt that is a timestamp string or epoch milliseconds. A createdAt
// that cannot be read leaves CreatedAt zero rather than failing the list.
func (a *Article) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        json.RawMessage `json:"id"`
		Title     string          `json:"title"`
		Details   string          `json:"details"`
		Content   string          `json:"content"`
		CreatedAt json.RawMessage `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = Article{
		ID:        decodeID(raw.ID),
		Title:     raw.Title,
		Details:   raw.Details,
		Content:   raw.Content,
		CreatedAt: decodeTime(raw.CreatedAt),
	}
	return nil
}

func decodeID(data json.RawMessage) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		return n.String()
	}
	return ""
}

func decodeTime(data json.RawMessage) time.Time {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return time.Time{}
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return parseTime(s)
	}

	// Numbers are milliseconds since the epoch, as JavaScript dates are
	var ms json.Number
	if err := json.Unmarshal(data, &ms); err == nil {
		if n, err := ms.Int64(); err == nil {
			return time.UnixMilli(n).UTC()
		}
		if f, err := ms.Float64(); err == nil {
			return time.UnixMilli(int64(f)).UTC()
		}
	}
	return time.Time{}
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(n).UTC()
	}
	return time.Time{}
}
