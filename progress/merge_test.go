package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteIdempotent(t *testing.T) {
	set, changed := Complete([]string{}, "m1")
	assert.True(t, changed)
	assert.Equal(t, []string{"m1"}, set)

	// Re-marking an already completed module must report no change so the
	// caller skips the duplicate persistence write.
	set, changed = Complete(set, "m1")
	assert.False(t, changed)
	assert.Equal(t, []string{"m1"}, set)

	set, changed = Complete(set, "m2")
	assert.True(t, changed)
	assert.Equal(t, []string{"m1", "m2"}, set)
}

func TestCompleteEmptyID(t *testing.T) {
	set, changed := Complete([]string{"m1"}, "")
	assert.False(t, changed)
	assert.Equal(t, []string{"m1"}, set)
}

func TestMergeFullSetSameEpochUnions(t *testing.T) {
	server := []string{"m1", "m2"}
	client := []string{"m2", "m3"}

	merged, accepted := MergeFullSet(server, 0, client, 0)
	assert.True(t, accepted)
	assert.ElementsMatch(t, []string{"m1", "m2", "m3"}, merged)
}

func TestMergeFullSetStaleEpochDiscarded(t *testing.T) {
	// The row was reset (epoch bumped to 1); a client still holding epoch 0
	// must not resurrect its cached completions.
	merged, accepted := MergeFullSet([]string{}, 1, []string{"m1", "m2", "m3"}, 0)
	assert.False(t, accepted)
	assert.Empty(t, merged)

	// After the client re-reads the row it writes at the current epoch.
	merged, accepted = MergeFullSet([]string{}, 1, []string{"m1"}, 1)
	assert.True(t, accepted)
	assert.Equal(t, []string{"m1"}, merged)
}

func TestMergeFullSetDeduplicates(t *testing.T) {
	merged, accepted := MergeFullSet(nil, 0, []string{"m2", "m1", "m2", "m1"}, 0)
	assert.True(t, accepted)
	assert.ElementsMatch(t, []string{"m1", "m2"}, merged)
}

func TestReconcileUnion(t *testing.T) {
	local := []string{"m1", "m3"}
	server := []string{"m1", "m2"}

	result, needsPersist := Reconcile(local, server, true, []string{"m1", "m2", "m3", "m4"})
	assert.ElementsMatch(t, []string{"m1", "m2", "m3"}, result)
	// Union is larger than the server's set, so the server must be updated.
	assert.True(t, needsPersist)
}

func TestReconcileServerAhead(t *testing.T) {
	local := []string{"m1"}
	server := []string{"m1", "m2"}

	result, needsPersist := Reconcile(local, server, true, []string{"m1", "m2", "m3"})
	assert.ElementsMatch(t, []string{"m1", "m2"}, result)
	assert.False(t, needsPersist)
}

func TestReconcileAllCompleteResetGuard(t *testing.T) {
	all := []string{"m1", "m2", "m3"}

	// Server fetch failed and the local cache suspiciously claims the whole
	// course is complete: drop it.
	result, needsPersist := Reconcile([]string{"m3", "m1", "m2"}, nil, false, all)
	assert.Empty(t, result)
	assert.False(t, needsPersist)

	// A partial local cache is kept when the server is unreachable.
	result, needsPersist = Reconcile([]string{"m1"}, nil, false, all)
	assert.Equal(t, []string{"m1"}, result)
	assert.False(t, needsPersist)

	// The guard only applies to failed fetches; a confirmed all-complete
	// server state survives.
	result, _ = Reconcile(all, all, true, all)
	assert.ElementsMatch(t, all, result)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	raw := EncodeIDs([]string{"m2", "m1", "m2"})
	assert.Equal(t, `["m2","m1"]`, raw)

	assert.Equal(t, []string{"m2", "m1"}, DecodeIDs(raw))
	assert.Empty(t, DecodeIDs(""))
	assert.Empty(t, DecodeIDs("not-json"))
	assert.Equal(t, "[]", EncodeIDs(nil))
}
