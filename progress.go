package sitebind

import "sync"

// ScanSnapshot is a point-in-time view of discovery progress.
type ScanSnapshot struct {
	Visited    int
	Budget     int
	CurrentURL string
}

// ReadSnapshot is a point-in-time view of ingestion fetch progress.
type ReadSnapshot struct {
	Completed int
	Total     int
	InFlight  []string
}

// WriteSnapshot is a point-in-time view of ingestion write progress.
type WriteSnapshot struct {
	Completed int
	Total     int
	LastLabel string
}

// Snapshot bundles the three independently observable progress views.
type Snapshot struct {
	Scan  ScanSnapshot
	Read  ReadSnapshot
	Write WriteSnapshot
}

// ProgressFunc is invoked with a fresh Snapshot after every state change.
type ProgressFunc func(Snapshot)

// Tracker accumulates scan, read, and write progress for one run.
// Counters are append-only within a run and reset at the start of the next
// phase. Tracker is safe for concurrent use by multiple workers; all
// mutation happens under a single mutex and the subscriber is called
// outside the critical section with a copied snapshot.
type Tracker struct {
	mu       sync.Mutex
	scan     ScanSnapshot
	read     ReadSnapshot
	write    WriteSnapshot
	inFlight map[string]struct{}
	observer ProgressFunc
}

// NewTracker returns a Tracker reporting to observer. A nil observer is
// allowed; progress is still accumulated and can be polled via Snapshot.
func NewTracker(observer ProgressFunc) *Tracker {
	return &Tracker{
		inFlight: make(map[string]struct{}),
		observer: observer,
	}
}

// StartScan resets scan progress for a new discovery phase.
func (t *Tracker) StartScan(budget int) {
	t.mu.Lock()
	t.scan = ScanSnapshot{Budget: budget}
	snap := t.snapshotLocked()
	t.mu.Unlock()
	t.notify(snap)
}

// Visit records one discovery visit attempt.
func (t *Tracker) Visit(url string) {
	t.mu.Lock()
	t.scan.Visited++
	t.scan.CurrentURL = url
	snap := t.snapshotLocked()
	t.mu.Unlock()
	t.notify(snap)
}

// StartIngest resets read and write progress for a new ingestion phase.
func (t *Tracker) StartIngest(total int) {
	t.mu.Lock()
	t.read = ReadSnapshot{Total: total}
	t.write = WriteSnapshot{Total: total}
	t.inFlight = make(map[string]struct{})
	snap := t.snapshotLocked()
	t.mu.Unlock()
	t.notify(snap)
}

// ReadBegin marks a URL as in flight.
func (t *Tracker) ReadBegin(url string) {
	t.mu.Lock()
	t.inFlight[url] = struct{}{}
	snap := t.snapshotLocked()
	t.mu.Unlock()
	t.notify(snap)
}

// ReadDone marks a URL's fetch as complete, success or failure.
func (t *Tracker) ReadDone(url string) {
	t.mu.Lock()
	delete(t.inFlight, url)
	t.read.Completed++
	snap := t.snapshotLocked()
	t.mu.Unlock()
	t.notify(snap)
}

// WriteDone records one document appended to the results collection.
func (t *Tracker) WriteDone(label string) {
	t.mu.Lock()
	t.write.Completed++
	t.write.LastLabel = label
	snap := t.snapshotLocked()
	t.mu.Unlock()
	t.notify(snap)
}

// Snapshot returns a copy of the current progress state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() Snapshot {
	read := t.read
	read.InFlight = make([]string, 0, len(t.inFlight))
	for url := range t.inFlight {
		read.InFlight = append(read.InFlight, url)
	}
	return Snapshot{Scan: t.scan, Read: read, Write: t.write}
}

func (t *Tracker) notify(snap Snapshot) {
	if t.observer != nil {
		t.observer(snap)
	}
}
