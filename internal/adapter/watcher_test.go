package adapter

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	m "github.com/redress-dev/redress/internal/model"
)

// runWatch starts w.Watch in the background and shuts it down when the test
// ends.
func runWatch(t *testing.T, w *FSWatcher, roots []m.Path, skip m.Path, onChange func()) {
	t.Helper()

	done := make(chan error, 1)

	go func() { done <- w.Watch(roots, skip, onChange) }()

	t.Cleanup(func() {
		_ = w.Close()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Watch returned error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Errorf("Watch did not return after Close")
		}
	})

	// Give the watcher time to register the directory tree.
	time.Sleep(100 * time.Millisecond)
}

func TestFSWatcher_Watch_FiresAfterSettle(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "src"), 0o750); err != nil {
		t.Fatalf("mkdir src: %v", err)
	}

	fired := make(chan struct{}, 1)
	w := NewFSWatcher(50*time.Millisecond, zerolog.Nop())

	runWatch(t, w, []m.Path{m.Path(dir)}, "", func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	if err := os.WriteFile(filepath.Join(dir, "src", "Lib.rs"), []byte("mod lib {}\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatalf("onChange not called after file write")
	}
}

func TestFSWatcher_Watch_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32

	w := NewFSWatcher(100*time.Millisecond, zerolog.Nop())

	runWatch(t, w, []m.Path{m.Path(dir)}, "", func() { calls.Add(1) })

	for _, name := range []string{"A.rs", "B.rs", "C.rs"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("mod m {}\n"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	time.Sleep(500 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Fatalf("onChange called %d times, want 1", got)
	}
}

func TestFSWatcher_Watch_SkipsReportsDir(t *testing.T) {
	dir := t.TempDir()
	reports := filepath.Join(dir, ".redress")

	if err := os.Mkdir(reports, 0o750); err != nil {
		t.Fatalf("mkdir reports: %v", err)
	}

	fired := make(chan struct{}, 1)
	w := NewFSWatcher(50*time.Millisecond, zerolog.Nop())

	runWatch(t, w, []m.Path{m.Path(dir)}, m.Path(".redress"), func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	if err := os.WriteFile(filepath.Join(reports, "review.log"), []byte("transcript\n"), 0o600); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	select {
	case <-fired:
		t.Fatalf("onChange called for a change under the reports dir")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFSWatcher_Close_StopsWatch(t *testing.T) {
	dir := t.TempDir()

	done := make(chan error, 1)
	w := NewFSWatcher(50*time.Millisecond, zerolog.Nop())

	go func() { done <- w.Watch([]m.Path{m.Path(dir)}, "", func() {}) }()

	time.Sleep(100 * time.Millisecond)

	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	// Close is idempotent.
	if err := w.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Watch did not return after Close")
	}
}

func TestFSWatcher_Watch_MissingRootTolerated(t *testing.T) {
	w := NewFSWatcher(50*time.Millisecond, zerolog.Nop())

	// A root that does not exist keeps the watch alive; the Cleanup in
	// runWatch fails the test if Watch bailed out with an error.
	runWatch(t, w, []m.Path{m.Path(filepath.Join(t.TempDir(), "absent"))}, "", func() {})
}

func TestUnderDir(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		path string
		dir  string
		want bool
	}{
		{name: "exact", path: "/work/.redress", dir: "/work/.redress", want: true},
		{name: "child", path: "/work/.redress/review.log", dir: "/work/.redress", want: true},
		{name: "embedded", path: "/work/.redress/runs/a.yaml", dir: ".redress", want: true},
		{name: "sibling", path: "/work/src/Lib.rs", dir: ".redress", want: false},
		{name: "similar name", path: "/work/.redress2/review.log", dir: ".redress", want: false},
	}

	for _, tc := range cases {
		tc := tc // per-iteration copy for toolchains before Go 1.22
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := underDir(tc.path, tc.dir); got != tc.want {
				t.Fatalf("underDir(%q, %q) = %v, want %v", tc.path, tc.dir, got, tc.want)
			}
		})
	}
}
