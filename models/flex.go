package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

// FlexAmount is a monetary amount that accepts JSON numbers, numeric
// strings, and null. Malformed input degrades to 0 rather than failing;
// the coercion itself lives in utils.ParseAmount.
type FlexAmount float64

func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*a = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		*a = FlexAmount(utils.ParseAmount(str))
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = FlexAmount(f)
	return nil
}

// FlexCount is an integer count with the same lenient policy as FlexAmount.
// Decimal input is truncated toward zero.
type FlexCount int

func (c *FlexCount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*c = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*c = 0
			return nil
		}
		*c = FlexCount(utils.ParseCount(str))
		return nil
	}
	*c = FlexCount(utils.ParseCount(s))
	return nil
}

// FlexTime normalizes the creation timestamp at the deserialization
// boundary. Entries written by this service carry RFC 3339 strings; legacy
// exports carry epoch milliseconds or a {seconds,nanoseconds} wrapper
// object. All three decode to a plain time.Time so nothing downstream has
// to care which shape the record arrived in.
type FlexTime struct {
	time.Time
}

// timestampWrapper matches the document-store timestamp object found in
// legacy exports.
type timestampWrapper struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		t.Time = time.Time{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		return t.parseString(str)
	}
	if s != "" && s[0] == '{' {
		var w timestampWrapper
		if err := json.Unmarshal(data, &w); err != nil {
			return fmt.Errorf("invalid timestamp object: %w", err)
		}
		t.Time = time.Unix(w.Seconds, w.Nanoseconds).UTC()
		return nil
	}
	millis, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp value %q", s)
	}
	t.Time = time.UnixMilli(millis).UTC()
	return nil
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *FlexTime) parseString(s string) error {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp string %q", s)
}

// Scan implements sql.Scanner so repositories can read the column directly.
func (t *FlexTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v
		return nil
	case int64:
		t.Time = time.UnixMilli(v).UTC()
		return nil
	case []byte:
		return t.parseString(string(v))
	case string:
		return t.parseString(v)
	default:
		return fmt.Errorf("cannot scan %T into FlexTime", value)
	}
}
