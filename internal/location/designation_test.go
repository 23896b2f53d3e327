package location

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Designation
		wantErr bool
	}{
		{"full name", "HOME", Home, false},
		{"full name lowercase", "vacation", Vacation, false},
		{"full name mixed case", "Travel", Travel, false},
		{"short code", "L", Lab, false},
		{"short code lowercase", "x", Holiday, false},
		{"whitespace tolerated", " W ", Weekend, false},
		{"unknown word", "OFFICE", 0, true},
		{"unknown letter", "Z", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDesignation) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidDesignation", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCodeNameBijection(t *testing.T) {
	codes := make(map[string]Designation)
	names := make(map[string]Designation)

	for _, d := range All {
		if prev, dup := codes[d.Code()]; dup {
			t.Errorf("code %q shared by %v and %v", d.Code(), prev, d)
		}
		codes[d.Code()] = d

		if prev, dup := names[d.Name()]; dup {
			t.Errorf("name %q shared by %v and %v", d.Name(), prev, d)
		}
		names[d.Name()] = d

		// Both forms must round-trip through Parse.
		if got, err := Parse(d.Code()); err != nil || got != d {
			t.Errorf("Parse(Code(%v)) = %v, %v", d, got, err)
		}
		if got, err := Parse(d.Name()); err != nil || got != d {
			t.Errorf("Parse(Name(%v)) = %v, %v", d, got, err)
		}
	}

	if len(codes) != 7 || len(names) != 7 {
		t.Errorf("expected 7 codes and 7 names, got %d and %d", len(codes), len(names))
	}
}

func TestDefaultFor(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Designation
	}{
		{"Monday at home", time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC), Home},
		{"Tuesday in lab", time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), Lab},
		{"Thursday in lab", time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), Lab},
		{"Friday at home", time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), Home},
		{"Saturday weekend", time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), Weekend},
		{"Sunday weekend", time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), Weekend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultFor(tt.date); got != tt.want {
				t.Errorf("DefaultFor(%v) = %v, want %v", tt.date.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}
