package syncer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

func TestDebounced_CoalescesBurstToLastValue(t *testing.T) {
	rec := &recorder{}
	d := NewDebounced(rec.record, 30*time.Millisecond, nil)

	for i := 1; i <= 10; i++ {
		d.Call(fmt.Sprintf("mutation-%d", i))
	}

	require.Eventually(t, func() bool {
		return len(rec.all()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"mutation-10"}, rec.all())

	// the window is closed; nothing else arrives
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, rec.all(), 1)
}

func TestDebounced_FlushDeliversImmediately(t *testing.T) {
	rec := &recorder{}
	d := NewDebounced(rec.record, time.Hour, nil)

	d.Call("pending")
	d.Flush()

	assert.Equal(t, []string{"pending"}, rec.all())
}

func TestDebounced_FlushWithoutPendingIsNoop(t *testing.T) {
	rec := &recorder{}
	d := NewDebounced(rec.record, time.Hour, nil)

	d.Flush()
	assert.Empty(t, rec.all())
}

func TestDebounced_CancelDropsPending(t *testing.T) {
	rec := &recorder{}
	d := NewDebounced(rec.record, 20*time.Millisecond, nil)

	d.Call("doomed")
	d.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.all())

	// a fresh call after Cancel still works
	d.Call("kept")
	require.Eventually(t, func() bool {
		return len(rec.all()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"kept"}, rec.all())
}

func TestDebounced_NoOverlappingInvocations(t *testing.T) {
	var running, overlaps, deliveries atomic.Int32
	release := make(chan struct{})

	d := NewDebounced(func(string) {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}
		deliveries.Add(1)
		<-release
		running.Add(-1)
	}, 10*time.Millisecond, nil)

	d.Call("first")
	require.Eventually(t, func() bool {
		return deliveries.Load() == 1
	}, time.Second, time.Millisecond)

	// schedule a second value while the first delivery is still blocked
	d.Call("second")
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(1), deliveries.Load())

	close(release)
	require.Eventually(t, func() bool {
		return deliveries.Load() == 2
	}, time.Second, time.Millisecond)
	assert.Zero(t, overlaps.Load())
}

func TestFlushRegistry_FlushesAll(t *testing.T) {
	reg := NewFlushRegistry()
	rec := &recorder{}

	a := NewDebounced(rec.record, time.Hour, reg)
	b := NewDebounced(rec.record, time.Hour, reg)

	a.Call("from-a")
	b.Call("from-b")
	reg.FlushAll()

	assert.ElementsMatch(t, []string{"from-a", "from-b"}, rec.all())
}
