package progress

// Complete adds a module to the completed set. Re-completing an already
// completed module is a no-op: the caller must skip the persistence write when
// changed is false.
func Complete(completed []string, moduleID string) (out []string, changed bool) {
	completed = Normalize(completed)
	if moduleID == "" || Contains(completed, moduleID) {
		return completed, false
	}
	return append(completed, moduleID), true
}

// MergeFullSet merges a client-submitted full completed-set into the server's
// row state.
//
// The epoch is the reset generation the client last read. A same-epoch write
// unions client and server sets (grow-only merge, so concurrent tabs and
// devices cannot lose each other's completions). A stale-epoch write means the
// row was reset after the client read it; the client's set is discarded and
// the server state stands, so a reset cannot be resurrected by a stale cache.
func MergeFullSet(serverSet []string, serverEpoch int64, clientSet []string, clientEpoch int64) (merged []string, accepted bool) {
	if clientEpoch < serverEpoch {
		return Normalize(serverSet), false
	}
	return Union(serverSet, clientSet), true
}

// Reconcile computes the client's post-load completed set from the
// locally-cached snapshot and the freshly fetched server snapshot.
//
// When the server responded, the result is the union of the two and
// needsPersist tells the caller the server is behind and must receive the
// union. When the fetch failed and the local cache claims every module in the
// course is complete, the cache is assumed stale and dropped entirely.
func Reconcile(local, server []string, serverOK bool, allModules []string) (result []string, needsPersist bool) {
	local = Normalize(local)

	if !serverOK {
		if len(allModules) > 0 && equalAsSets(local, allModules) {
			return []string{}, false
		}
		return local, false
	}

	server = Normalize(server)
	result = Union(server, local)
	return result, len(result) > len(server)
}
