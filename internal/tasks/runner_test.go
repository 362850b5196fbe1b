package tasks_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/apx-soporte/warranty-tracker/constants"
	"github.com/apx-soporte/warranty-tracker/internal/tasks"
)

func waitTerminal(t *testing.T, r *tasks.Runner, id string) tasks.Snapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap := r.Poll(id)
		if snap.Status.Terminal() {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s never reached a terminal status", id)
	return tasks.Snapshot{}
}

func TestSubmitAndPollSuccess(t *testing.T) {
	r := tasks.NewRunner(nil)

	id := r.Submit(func(_ string, report tasks.ReportFunc) (any, error) {
		report(50, "halfway")
		return map[string]int{"added": 3}, nil
	})
	assert.NotEmpty(t, id)

	snap := waitTerminal(t, r, id)
	assert.Equal(t, constants.JobStatusDone, snap.Status)
	assert.Equal(t, 100, snap.Percent)
	assert.Equal(t, map[string]int{"added": 3}, snap.Result)
}

func TestSubmitFailureKeepsErrorMessage(t *testing.T) {
	r := tasks.NewRunner(nil)

	id := r.Submit(func(_ string, _ tasks.ReportFunc) (any, error) {
		return nil, errors.New("workbook not found at /tmp/missing.xlsx")
	})

	snap := waitTerminal(t, r, id)
	assert.Equal(t, constants.JobStatusError, snap.Status)
	assert.Equal(t, "workbook not found at /tmp/missing.xlsx", snap.Message)
	assert.Nil(t, snap.Result)
}

func TestPanicBecomesErrorStatus(t *testing.T) {
	r := tasks.NewRunner(nil)

	id := r.Submit(func(_ string, _ tasks.ReportFunc) (any, error) {
		panic("boom")
	})

	snap := waitTerminal(t, r, id)
	assert.Equal(t, constants.JobStatusError, snap.Status)
	assert.Contains(t, snap.Message, "internal error")
	assert.Contains(t, snap.Message, "boom")
}

func TestPollUnknownID(t *testing.T) {
	r := tasks.NewRunner(nil)

	snap := r.Poll("no-such-job")
	assert.Equal(t, constants.JobStatusNotFound, snap.Status)
	assert.Equal(t, "no-such-job", snap.ID)
	assert.Equal(t, 0, snap.Percent)
}

func TestProgressNeverDecreases(t *testing.T) {
	r := tasks.NewRunner(nil)

	reported := make(chan struct{})
	release := make(chan struct{})
	id := r.Submit(func(_ string, report tasks.ReportFunc) (any, error) {
		report(80, "almost")
		report(20, "bogus regression")
		report(150, "overshoot")
		close(reported)
		<-release
		return nil, nil
	})

	<-reported
	snap := r.Poll(id)
	assert.Equal(t, constants.JobStatusRunning, snap.Status)
	assert.Equal(t, 100, snap.Percent) // 150 clamps to 100, 20 is ignored
	assert.Equal(t, "overshoot", snap.Message)

	close(release)
	final := waitTerminal(t, r, id)
	assert.Equal(t, constants.JobStatusDone, final.Status)
}

func TestJobsAreIsolated(t *testing.T) {
	r := tasks.NewRunner(nil)

	okID := r.Submit(func(_ string, _ tasks.ReportFunc) (any, error) { return "ok", nil })
	badID := r.Submit(func(_ string, _ tasks.ReportFunc) (any, error) { return nil, errors.New("bad") })

	okSnap := waitTerminal(t, r, okID)
	badSnap := waitTerminal(t, r, badID)

	assert.NotEqual(t, okID, badID)
	assert.Equal(t, constants.JobStatusDone, okSnap.Status)
	assert.Equal(t, constants.JobStatusError, badSnap.Status)
}
