package crawler

import "sync"

// requestQueue is a FIFO shared by all workers.
// next blocks until a request is available, or returns false once the
// queue is empty with nothing in flight (or it was closed).
type requestQueue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	items    []Request
	inFlight int
	closed   bool
}

func newRequestQueue() *requestQueue {
	q := &requestQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *requestQueue) push(reqs ...Request) {
	if len(reqs) == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, reqs...)
	q.cond.Broadcast()
}

func (q *requestQueue) next() (Request, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && q.inFlight > 0 && !q.closed {
		q.cond.Wait()
	}
	if q.closed || len(q.items) == 0 {
		q.cond.Broadcast()
		return Request{}, false
	}
	req := q.items[0]
	q.items = q.items[1:]
	q.inFlight++
	return req, true
}

// done marks one request from next as finished. Follow-up requests are
// pushed before the in-flight count drops so idle workers never exit early.
func (q *requestQueue) done(followUps ...Request) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, followUps...)
	q.inFlight--
	q.cond.Broadcast()
}

func (q *requestQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}
