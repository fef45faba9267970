package logfields

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestHelperKeys(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{"Page", Page("Main_About"), KeyPage, "Main_About"},
		{"File", File("Main_About.html"), KeyFile, "Main_About.html"},
		{"Version", Version("2.0.1"), KeyVersion, "2.0.1"},
		{"Path", Path("/tmp/x"), KeyPath, "/tmp/x"},
		{"Stage", Stage("compose"), KeyStage, "compose"},
		{"Binding", Binding("append"), KeyBinding, "append"},
		{"Executable", Executable("/usr/bin/eureka"), KeyExecutable, "/usr/bin/eureka"},
		{"Error", Error(errors.New("boom")), KeyError, "boom"},
		{"Error nil", Error(nil), KeyError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if tc.attr.Key != tc.wantKey {
				t.Errorf("key = %q, want %q", tc.attr.Key, tc.wantKey)
			}
			if got := tc.attr.Value.String(); got != tc.wantVal {
				t.Errorf("value = %q, want %q", got, tc.wantVal)
			}
		})
	}
}

func TestNumericHelpers(t *testing.T) {
	t.Parallel()

	if a := Count(3); a.Key != KeyCount || a.Value.Int64() != 3 {
		t.Errorf("Count(3) = %v", a)
	}
	if a := Bytes(512); a.Key != KeyBytes || a.Value.Int64() != 512 {
		t.Errorf("Bytes(512) = %v", a)
	}
	if a := Duration(1500 * time.Microsecond); a.Key != KeyDurationMS || a.Value.Float64() != 1.5 {
		t.Errorf("Duration(1.5ms) = %v", a)
	}
}
