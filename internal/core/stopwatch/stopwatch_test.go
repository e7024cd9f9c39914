package stopwatch

import (
	"testing"
	"time"

	"stopwatch/internal/core/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickN(watch *Stopwatch, n int) {
	for i := 0; i < n; i++ {
		watch.Tick()
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		elapsed time.Duration
		want    string
	}{
		"zero":            {elapsed: 0, want: "00:00:00"},
		"seconds only":    {elapsed: 59 * time.Second, want: "00:00:59"},
		"minute boundary": {elapsed: 60 * time.Second, want: "00:01:00"},
		"one of each":     {elapsed: 3661 * time.Second, want: "01:01:01"},
		"sub-second dropped": {
			elapsed: 5*time.Second + 900*time.Millisecond,
			want:    "00:00:05",
		},
		"hours do not wrap": {elapsed: 100*time.Hour + 2*time.Second, want: "100:00:02"},
		"negative clamps":   {elapsed: -time.Second, want: "00:00:00"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Format(tt.elapsed).String())
		})
	}
}

func TestFormat_Components(t *testing.T) {
	t.Parallel()

	formatted := Format(3723 * time.Second)
	assert.Equal(t, Formatted{Hours: "01", Minutes: "02", Seconds: "03"}, formatted)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []Status{StatusIdle, StatusStarted, StatusStopped, StatusCanceled} {
		parsed, ok := ParseStatus(status.String())
		assert.True(t, ok)
		assert.Equal(t, status, parsed)
	}

	_, ok := ParseStatus("started")
	assert.False(t, ok)
	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestStopwatch_Transitions(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setup      func(*Stopwatch)
		op         func(*Stopwatch) bool
		wantChange bool
		wantStatus Status
	}{
		"start from idle": {
			setup:      func(*Stopwatch) {},
			op:         (*Stopwatch).Start,
			wantChange: true,
			wantStatus: StatusStarted,
		},
		"start from stopped": {
			setup:      func(w *Stopwatch) { w.Start(); w.Stop() },
			op:         (*Stopwatch).Start,
			wantChange: true,
			wantStatus: StatusStarted,
		},
		"start while started is a no-op": {
			setup:      func(w *Stopwatch) { w.Start() },
			op:         (*Stopwatch).Start,
			wantChange: false,
			wantStatus: StatusStarted,
		},
		"stop from started": {
			setup:      func(w *Stopwatch) { w.Start() },
			op:         (*Stopwatch).Stop,
			wantChange: true,
			wantStatus: StatusStopped,
		},
		"stop while idle is a no-op": {
			setup:      func(*Stopwatch) {},
			op:         (*Stopwatch).Stop,
			wantChange: false,
			wantStatus: StatusIdle,
		},
		"cancel while idle is a no-op": {
			setup:      func(*Stopwatch) {},
			op:         (*Stopwatch).Cancel,
			wantChange: false,
			wantStatus: StatusIdle,
		},
		"cancel from started": {
			setup:      func(w *Stopwatch) { w.Start(); w.Tick() },
			op:         (*Stopwatch).Cancel,
			wantChange: true,
			wantStatus: StatusIdle,
		},
		"cancel from stopped": {
			setup:      func(w *Stopwatch) { w.Start(); w.Tick(); w.Stop() },
			op:         (*Stopwatch).Cancel,
			wantChange: true,
			wantStatus: StatusIdle,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			watch := New()
			tt.setup(watch)
			assert.Equal(t, tt.wantChange, tt.op(watch))
			assert.Equal(t, tt.wantStatus, watch.Status())
		})
	}
}

func TestStopwatch_TickOnlyWhileStarted(t *testing.T) {
	t.Parallel()

	watch := New()
	assert.False(t, watch.Tick())
	assert.Equal(t, time.Duration(0), watch.Elapsed())

	watch.Start()
	tickN(watch, 4)
	assert.Equal(t, 4*time.Second, watch.Elapsed())

	watch.Stop()
	assert.False(t, watch.Tick())
	assert.Equal(t, 4*time.Second, watch.Elapsed())
}

func TestStopwatch_StopResumeIsAdditive(t *testing.T) {
	t.Parallel()

	watch := New()
	watch.Start()
	tickN(watch, 3)
	watch.Stop()
	watch.Start()
	tickN(watch, 2)

	snapshot := watch.Snapshot()
	assert.Equal(t, StatusStarted, snapshot.Status)
	assert.Equal(t, 5*time.Second, snapshot.Elapsed)
	assert.Equal(t, "00:00:05", snapshot.Time.String())
}

func TestStopwatch_StopTwiceIsIdempotent(t *testing.T) {
	t.Parallel()

	watch := New()
	watch.Start()
	tickN(watch, 2)
	require.True(t, watch.Stop())
	first := watch.Snapshot()

	assert.False(t, watch.Stop())
	assert.Equal(t, first, watch.Snapshot())
}

func TestStopwatch_CancelAlwaysResets(t *testing.T) {
	t.Parallel()

	setups := map[string]func(*Stopwatch){
		"idle":    func(*Stopwatch) {},
		"started": func(w *Stopwatch) { w.Start(); tickN(w, 7) },
		"stopped": func(w *Stopwatch) { w.Start(); tickN(w, 7); w.Stop() },
	}

	for name, setup := range setups {
		setup := setup
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			watch := New()
			setup(watch)
			watch.Cancel()

			snapshot := watch.Snapshot()
			assert.Equal(t, StatusIdle, snapshot.Status)
			assert.Equal(t, time.Duration(0), snapshot.Elapsed)
			assert.Equal(t, "00:00:00", snapshot.Time.String())
		})
	}
}

func TestDriver_ArmDisarm(t *testing.T) {
	t.Parallel()

	manual := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	driver := NewDriver(manual)

	assert.False(t, driver.Armed())
	assert.Nil(t, driver.C())
	driver.Disarm()

	driver.Arm()
	first := driver.C()
	require.NotNil(t, first)
	driver.Arm()
	assert.Equal(t, first, driver.C(), "arming twice keeps the running ticker")
	assert.Equal(t, 1, manual.Active())

	driver.Disarm()
	assert.False(t, driver.Armed())
	assert.Equal(t, 0, manual.Active())

	driver.Arm()
	assert.NotEqual(t, first, driver.C(), "re-arming creates a fresh ticker")
	driver.Disarm()
}
