package crawler

// frontier is the FIFO queue of absolute URLs awaiting a visit, paired with
// the set of fragment-normalized URLs already seen. The queue may transiently
// hold the same URL twice when two pages discover it before either copy is
// dequeued; the duplicate collapses at dequeue time, so enqueue does not
// scan pending entries.
type frontier struct {
	queue   []string
	visited map[string]struct{}
}

func newFrontier() *frontier {
	return &frontier{
		visited: make(map[string]struct{}),
	}
}

// Push appends url to the tail of the queue.
func (f *frontier) Push(url string) {
	f.queue = append(f.queue, url)
}

// Pop removes and returns the head of the queue, preserving discovery order.
func (f *frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	head := f.queue[0]
	f.queue = f.queue[1:]
	return head, true
}

// Len reports how many entries are pending.
func (f *frontier) Len() int {
	return len(f.queue)
}

// Seen reports whether url has already been marked visited.
func (f *frontier) Seen(url string) bool {
	_, ok := f.visited[url]
	return ok
}

// MarkVisited records url as visited. Callers pass fragment-stripped URLs.
func (f *frontier) MarkVisited(url string) {
	f.visited[url] = struct{}{}
}

// VisitedCount reports how many distinct URLs have been visited.
func (f *frontier) VisitedCount() int {
	return len(f.visited)
}
