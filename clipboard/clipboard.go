package clipboard

import (
	"sync"

	"golang.design/x/clipboard"
)

var writeMu sync.Mutex

// Init claims access to the system clipboard. Failure means the clipboard
// output channel is unavailable; the picker still runs.
func Init() error {
	return clipboard.Init()
}

// Write replaces the clipboard contents with text as the sole entry. The
// mutex guards against a hook callback racing a shutdown-path write.
func Write(text string) error {
	writeMu.Lock()
	defer writeMu.Unlock()
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
