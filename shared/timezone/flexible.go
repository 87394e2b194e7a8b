package timezone

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexibleTime is a time.Time that accepts the two date shapes clients send:
// an RFC3339 string or a unix epoch in milliseconds. It always marshals back
// to RFC3339 in the application timezone.
type FlexibleTime struct {
	time.Time
}

func NewFlexibleTime(t time.Time) FlexibleTime {
	return FlexibleTime{Time: ToAppTime(t)}
}

func (t *FlexibleTime) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))

	if raw == "null" || raw == `""` {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("failed to decode date string: %w", err)
		}

		parsed, err := time.Parse(time.RFC3339, str)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339Nano, str)
		}

		if err != nil {
			return fmt.Errorf("failed to parse date %q: %w", str, err)
		}

		t.Time = ToAppTime(parsed)

		return nil
	}

	millis, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("failed to parse epoch date %q: %w", raw, err)
	}

	t.Time = ToAppTime(time.UnixMilli(int64(millis)))

	return nil
}

// String renders the time as RFC3339 in the application timezone.
func (t FlexibleTime) String() string {
	if t.Time.IsZero() {
		return ""
	}

	return Format(t.Time, time.RFC3339)
}

func (t FlexibleTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return json.Marshal("")
	}

	return json.Marshal(Format(t.Time, time.RFC3339))
}
