package ai

import (
	"container/heap"

	"github.com/rocketscienceinc/tictactoe-grid/internal/entity"
)

// Candidate is a scored empty cell.
type Candidate struct {
	Position entity.Position
	Score    float64
}

type queueItem struct {
	Candidate

	priority float64
	seq      int
}

// scoreQueue is a min-heap on priority; equal priorities dequeue in insertion order.
type scoreQueue struct {
	items []*queueItem
	next  int
}

func newScoreQueue(capacity int) *scoreQueue {
	return &scoreQueue{items: make([]*queueItem, 0, capacity)}
}

func (that *scoreQueue) Len() int { return len(that.items) }

func (that *scoreQueue) Less(i, j int) bool {
	if that.items[i].priority != that.items[j].priority {
		return that.items[i].priority < that.items[j].priority
	}

	return that.items[i].seq < that.items[j].seq
}

func (that *scoreQueue) Swap(i, j int) { that.items[i], that.items[j] = that.items[j], that.items[i] }

func (that *scoreQueue) Push(x any) {
	that.items = append(that.items, x.(*queueItem)) //nolint: forcetypeassert // only queueItem is pushed
}

func (that *scoreQueue) Pop() any {
	n := len(that.items)
	item := that.items[n-1]
	that.items[n-1] = nil
	that.items = that.items[:n-1]

	return item
}

// enqueue - inserts with priority -score so the best cell dequeues first.
func (that *scoreQueue) enqueue(candidate Candidate) {
	heap.Push(that, &queueItem{
		Candidate: candidate,
		priority:  -candidate.Score,
		seq:       that.next,
	})
	that.next++
}

func (that *scoreQueue) dequeue() Candidate {
	return heap.Pop(that).(*queueItem).Candidate //nolint: forcetypeassert // only queueItem is pushed
}
