// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

package cache

import (
	"container/heap"
	"sync"
)

// RankEntry is one key in a RankHeap.
type RankEntry[T any] struct {
	Key   string
	Value T
	Score float64
	// Seq is the order the key was first inserted; lower wins ties.
	Seq   int
	index int
}

// rankQueue implements heap.Interface; RankHeap owns the locking.
type rankQueue[T any] []*RankEntry[T]

func (q rankQueue[T]) Len() int { return len(q) }

func (q rankQueue[T]) Less(i, j int) bool {
	if q[i].Score != q[j].Score {
		return q[i].Score > q[j].Score
	}
	return q[i].Seq < q[j].Seq
}

func (q rankQueue[T]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *rankQueue[T]) Push(x any) {
	e := x.(*RankEntry[T])
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *rankQueue[T]) Pop() any {
	old := *q
	n := len(old) - 1
	e := old[n]
	old[n] = nil
	e.index = -1
	*q = old[:n]
	return e
}

// RankHeap is a max-heap over string keys ordered by score, with ties going
// to the key inserted first. Keys are indexed, so scores can be accumulated
// in place and any key removed in O(log n). The top is read with Peek and
// retired with Remove.
type RankHeap[T any] struct {
	mu      sync.RWMutex
	queue   rankQueue[T]
	byKey   map[string]*RankEntry[T]
	nextSeq int
}

// NewRankHeap creates an empty rank heap.
func NewRankHeap[T any]() *RankHeap[T] {
	return &RankHeap[T]{byKey: make(map[string]*RankEntry[T])}
}

// Add increases the score of key by delta, inserting it at delta if new,
// and returns the new score.
func (h *RankHeap[T]) Add(key string, value T, delta float64) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := h.entry(key, value)
	e.Score += delta
	heap.Fix(&h.queue, e.index)
	return e.Score
}

// Peek returns the top entry without removing it, or nil when empty.
func (h *RankHeap[T]) Peek() *RankEntry[T] {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.queue.Len() == 0 {
		return nil
	}
	return h.queue[0]
}

// Remove deletes key and returns its entry, or nil if absent.
func (h *RankHeap[T]) Remove(key string) *RankEntry[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, ok := h.byKey[key]
	if !ok {
		return nil
	}
	heap.Remove(&h.queue, e.index)
	delete(h.byKey, key)
	return e
}

// Len returns the number of keys in the heap.
func (h *RankHeap[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.queue.Len()
}

// entry returns the entry for key, inserting a zero-score one if needed.
// Must be called with mu held.
func (h *RankHeap[T]) entry(key string, value T) *RankEntry[T] {
	if e, ok := h.byKey[key]; ok {
		return e
	}
	e := &RankEntry[T]{Key: key, Value: value, Seq: h.nextSeq}
	h.nextSeq++
	heap.Push(&h.queue, e)
	h.byKey[key] = e
	return e
}
