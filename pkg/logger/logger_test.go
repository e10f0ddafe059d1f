package logger

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name string
		in   []interface{}
		want []interface{}
	}{
		{"empty", nil, nil},
		{"pairs", []interface{}{"k", 1}, []interface{}{"k", 1}},
		{"bare error", []interface{}{errBoom}, []interface{}{"error", errBoom}},
		{"trailing value", []interface{}{"k", 1, errBoom}, []interface{}{"k", 1, "error", errBoom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	Init("test")
	Info("logger ready", "env", "test")
	Init("production")
	Debug("dropped at info level")
}
