package core

// ReadyQueue is the FIFO of processes waiting for the CPU.
// A process is held at most once; it leaves on RemoveFromTop and only
// comes back through AddToEnd.
type ReadyQueue struct {
	queue []*RuntimeProcess
}

func NewReadyQueue(processes []Process) *ReadyQueue {
	q := &ReadyQueue{queue: make([]*RuntimeProcess, 0, len(processes))}
	for _, p := range processes {
		q.AddToEnd(newRuntimeProcess(p))
	}
	return q
}

func (q *ReadyQueue) AddToEnd(p *RuntimeProcess) {
	q.queue = append(q.queue, p)
}

func (q *ReadyQueue) RemoveFromTop() (*RuntimeProcess, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	p := q.queue[0]
	q.queue[0] = nil
	q.queue = q.queue[1:]
	return p, true
}

func (q *ReadyQueue) Len() int {
	return len(q.queue)
}

// Snapshot copies the queue in dispatch order.
func (q *ReadyQueue) Snapshot() []QueueEntry {
	out := make([]QueueEntry, 0, len(q.queue))
	for _, p := range q.queue {
		out = append(out, QueueEntry{Name: p.Name, RemainingTime: p.RemainingTime})
	}
	return out
}
