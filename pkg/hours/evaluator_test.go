package hours

import (
	"testing"
	"time"
)

// bogota avoids DST surprises: the offset is fixed at -05:00 year round.
var bogota = time.FixedZone("-05", -5*60*60)

func at(weekdayOffset int, hour, minute int) time.Time {
	// 2026-01-05 is a Monday.
	base := time.Date(2026, 1, 5, hour, minute, 0, 0, bogota)
	return base.AddDate(0, 0, weekdayOffset)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		cfg  Config
		want bool
	}{
		{
			name: "disabled config is always available",
			now:  at(6, 3, 0), // sunday, 03:00
			cfg:  Config{Enabled: false},
			want: true,
		},
		{
			name: "weekday inside window",
			now:  at(0, 10, 30),
			cfg:  DefaultConfig(),
			want: true,
		},
		{
			name: "one minute before opening",
			now:  at(0, 8, 59),
			cfg:  DefaultConfig(),
			want: false,
		},
		{
			name: "exactly at opening",
			now:  at(0, 9, 0),
			cfg:  DefaultConfig(),
			want: true,
		},
		{
			name: "one minute before closing",
			now:  at(0, 17, 59),
			cfg:  DefaultConfig(),
			want: true,
		},
		{
			name: "exactly at closing is closed",
			now:  at(0, 18, 0),
			cfg:  DefaultConfig(),
			want: false,
		},
		{
			name: "saturday short window",
			now:  at(5, 13, 59),
			cfg:  DefaultConfig(),
			want: true,
		},
		{
			name: "saturday after closing",
			now:  at(5, 14, 0),
			cfg:  DefaultConfig(),
			want: false,
		},
		{
			name: "sunday disabled day",
			now:  at(6, 10, 0),
			cfg:  DefaultConfig(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.now, tt.cfg)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateFailsOpen(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "unknown timezone",
			cfg: Config{
				Enabled:  true,
				Timezone: "Mars/Olympus",
				Schedule: DefaultConfig().Schedule,
			},
		},
		{
			name: "missing day entry",
			cfg: Config{
				Enabled:  true,
				Timezone: "America/Bogota",
				Schedule: Schedule{},
			},
		},
		{
			name: "malformed open time",
			cfg: Config{
				Enabled:  true,
				Timezone: "America/Bogota",
				Schedule: Schedule{
					"monday": {Open: "nine", Close: "18:00", Enabled: true},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(at(0, 10, 0), tt.cfg)
			if err == nil {
				t.Fatal("Evaluate() expected error")
			}
			if !got {
				t.Error("Evaluate() should fail open on config errors")
			}
		})
	}
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 540},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "0900", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMinutes(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMinutes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
