package core

import "testing"

func TestSeverityOrdering(t *testing.T) {
	ordered := []Severity{Emerg, Alert, Crit, Err, Warning, Notice, Info, Debug}
	for i, s := range ordered {
		if int(s) != i {
			t.Errorf("severity %v = %d, want %d", s, int(s), i)
		}
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Emerg, "EMERG"},
		{Alert, "ALERT"},
		{Crit, "CRIT"},
		{Err, "ERR"},
		{Warning, "WARN"},
		{Notice, "NOTICE"},
		{Info, "INFO"},
		{Debug, "DEBUG"},
		{Severity(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", int(tt.severity), got, tt.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		text    string
		want    Severity
		wantErr bool
	}{
		{"emerg", Emerg, false},
		{"EMERGENCY", Emerg, false},
		{"alert", Alert, false},
		{"crit", Crit, false},
		{"critical", Crit, false},
		{"err", Err, false},
		{"Error", Err, false},
		{"warn", Warning, false},
		{"warning", Warning, false},
		{"notice", Notice, false},
		{" info ", Info, false},
		{"debug", Debug, false},
		{"loud", Notice, true},
		{"", Notice, true},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.text)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSeverity(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSeverityValid(t *testing.T) {
	for s := Emerg; s <= Debug; s++ {
		if !s.Valid() {
			t.Errorf("Severity(%d).Valid() = false, want true", int(s))
		}
	}
	for _, s := range []Severity{-1, 8, 100} {
		if s.Valid() {
			t.Errorf("Severity(%d).Valid() = true, want false", int(s))
		}
	}
}
