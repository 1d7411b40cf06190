// Package execution defines execution contracts and small runners for them.
//
// ItemContext describes one step of a cancelable iteration with shared state;
// ForEachItem and ForEachItemParallel drive such iterations. TaskContext is a
// cancelable, waitable handle for background work; Task implements it on top
// of go-asynctask.
//
//	err := execution.ForEachItemParallel(ctx, files, &stats, 4,
//	    func(ic execution.ItemContext[string, *Stats]) error {
//	        return hashFile(ic.Context(), ic.Item(), ic.State())
//	    })
package execution
