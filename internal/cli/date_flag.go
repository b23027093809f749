package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value that parses YYYY-MM-DD dates.
type dateValue struct {
	t *time.Time
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(t *time.Time) *dateValue {
	return &dateValue{t: t}
}

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format("2006-01-02")
}

func (d *dateValue) Set(s string) error {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	*d.t = t
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}
