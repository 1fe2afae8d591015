package validation

import (
	"strings"
	"testing"

	"habittrack/internal/errors"
)

func TestHabitName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain name",
			input: "Drink water",
			want:  "Drink water",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  Exercise \t",
			want:  "Exercise",
		},
		{
			name:    "empty string rejected",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace-only rejected",
			input:   "   \n ",
			wantErr: true,
		},
		{
			name:    "overlong name rejected",
			input:   strings.Repeat("x", 200),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HabitName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HabitName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.IsValidation(err) {
					t.Errorf("expected a validation error, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("HabitName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
