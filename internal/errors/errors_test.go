package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		matches func(error) bool
		others  []func(error) bool
	}{
		{
			name:    "validation",
			err:     Validationf("habit name %q is empty", ""),
			matches: IsValidation,
			others:  []func(error) bool{IsNotFound, IsDuplicate, IsPersistence},
		},
		{
			name:    "not found",
			err:     NotFoundf("habit %s", "abc"),
			matches: IsNotFound,
			others:  []func(error) bool{IsValidation, IsDuplicate, IsPersistence},
		},
		{
			name:    "duplicate",
			err:     Duplicatef("habit %s already completed on %s", "abc", "2024-03-10"),
			matches: IsDuplicate,
			others:  []func(error) bool{IsValidation, IsNotFound, IsPersistence},
		},
		{
			name:    "persistence",
			err:     Persistence(stderrors.New("disk full")),
			matches: IsPersistence,
			others:  []func(error) bool{IsValidation, IsNotFound, IsDuplicate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.matches(tt.err) {
				t.Errorf("error %v does not match its own class", tt.err)
			}
			for _, other := range tt.others {
				if other(tt.err) {
					t.Errorf("error %v matches a foreign class", tt.err)
				}
			}
		})
	}
}

func TestPersistencefPreservesCause(t *testing.T) {
	cause := stderrors.New("database is locked")
	err := Persistencef(cause, "failed to add habit %s", "abc")

	if !IsPersistence(err) {
		t.Error("Persistencef() result is not a persistence error")
	}
	if !stderrors.Is(err, cause) {
		t.Error("Persistencef() lost the underlying cause")
	}
	if !strings.Contains(err.Error(), "failed to add habit abc") {
		t.Errorf("Persistencef() message = %q, want context included", err.Error())
	}
}

func TestPersistenceNilPassthrough(t *testing.T) {
	if Persistence(nil) != nil {
		t.Error("Persistence(nil) != nil")
	}
	if Persistencef(nil, "context") != nil {
		t.Error("Persistencef(nil) != nil")
	}
}

func TestMessagesCarryContext(t *testing.T) {
	err := Validationf("habit name exceeds %d characters", 80)
	if !strings.Contains(err.Error(), "80 characters") {
		t.Errorf("formatted message lost its arguments: %q", err.Error())
	}
}

func TestFormat(t *testing.T) {
	if got := Format(stderrors.New("boom")); got != "Error: boom" {
		t.Errorf("Format() = %q, want %q", got, "Error: boom")
	}
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
