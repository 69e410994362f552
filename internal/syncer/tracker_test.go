package syncer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorSwitch_MidLoadDiscardsStaleResult(t *testing.T) {
	td := newTestDomain("tasks", ScopeActorScoped)

	started := make(chan struct{})
	release := make(chan struct{})
	td.fetchHook = func(_ context.Context, actorID string) (json.RawMessage, error) {
		if actorID == "alice" {
			close(started)
			<-release
			return json.RawMessage(`[{"id":"task-alice"}]`), nil
		}
		return json.RawMessage(`[{"id":"task-bob"}]`), nil
	}

	actors := newFakeActors("alice")
	opts := testOptions()
	c := newTestCoordinator(t, actors, opts, td)

	done := make(chan struct{})
	go func() {
		c.Initialize(context.Background())
		close(done)
	}()

	// alice's load is stuck in flight when the household switches to bob
	<-started
	actors.set("bob")
	close(release)
	<-done

	require.Eventually(t, func() bool {
		return c.CurrentState().Phase == ActorReady
	}, time.Second, 5*time.Millisecond)

	// bob's data landed; alice's late response was discarded, not written
	assert.JSONEq(t, `[{"id":"task-bob"}]`, td.getLocal("bob"))
	assert.Equal(t, "[]", td.getLocal("alice"))

	st := c.CurrentState()
	assert.Equal(t, "bob", st.ActiveActorID)
	assert.Empty(t, st.LoadingActorID)
}

func TestActorSwitch_CancelsPendingPushesForOldActor(t *testing.T) {
	td := newTestDomain("tasks", ScopeActorScoped)
	actors := newFakeActors("alice")

	opts := testOptions()
	opts.DebounceDelay = 100 * time.Millisecond
	c := newTestCoordinator(t, actors, opts, td)
	c.Initialize(context.Background())

	td.mutate("alice", `[{"id":"t-alice"}]`)
	actors.set("bob") // before the debounce window closes

	settle(opts)
	assert.Empty(t, td.upsertCalls())

	td.mutate("bob", `[{"id":"t-bob"}]`)
	require.Eventually(t, func() bool {
		return len(td.upsertCalls()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "bob", td.upsertCalls()[0].actorID)
}

func TestLogout_RetainsLocalStateAndStopsActorSync(t *testing.T) {
	td := newTestDomain("events", ScopeActorScoped)
	td.setRemote("alice", `[{"id":"ev1"}]`)
	actors := newFakeActors("alice")

	opts := testOptions()
	c := newTestCoordinator(t, actors, opts, td)
	c.Initialize(context.Background())
	require.JSONEq(t, `[{"id":"ev1"}]`, td.getLocal("alice"))
	fetchesAfterInit := td.fetchCount()

	actors.set("")

	st := c.CurrentState()
	assert.Equal(t, ActorNone, st.Phase)
	assert.Empty(t, st.ActiveActorID)
	// logout is not a wipe
	assert.JSONEq(t, `[{"id":"ev1"}]`, td.getLocal("alice"))
	assert.Equal(t, fetchesAfterInit, td.fetchCount())

	// selecting the same actor again runs a fresh load
	actors.set("alice")
	require.Eventually(t, func() bool {
		return c.CurrentState().Phase == ActorReady
	}, time.Second, 5*time.Millisecond)
	assert.Greater(t, td.fetchCount(), fetchesAfterInit)
}

func TestActorSelect_FromNoneLoadsScopedDomainsOnly(t *testing.T) {
	shared := newTestDomain("expenses", ScopeShared)
	scoped := newTestDomain("tasks", ScopeActorScoped)
	scoped.setRemote("alice", `[{"id":"t1"}]`)
	actors := newFakeActors("")

	opts := testOptions()
	c := newTestCoordinator(t, actors, opts, shared, scoped)
	c.Initialize(context.Background())
	sharedFetches := shared.fetchCount()
	assert.Zero(t, scoped.fetchCount())

	actors.set("alice")
	require.Eventually(t, func() bool {
		return c.CurrentState().Phase == ActorReady
	}, time.Second, 5*time.Millisecond)

	assert.JSONEq(t, `[{"id":"t1"}]`, scoped.getLocal("alice"))
	// switching actors does not re-arbitrate shared domains
	assert.Equal(t, sharedFetches, shared.fetchCount())
}
