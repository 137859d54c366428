package utils

import (
	"context"
	"fmt"
)

// MailBox carries messages point to point between NP threads. Each ordered
// (from, to) pair has its own channel, so messages between two threads are
// received in the order they were posted.
type MailBox[T any] struct {
	NP    int
	boxes [][]chan T // boxes[from][to]
}

func NewMailBox[T any](NP, depth int) *MailBox[T] {
	mb := &MailBox[T]{
		NP:    NP,
		boxes: make([][]chan T, NP),
	}
	for from := 0; from < NP; from++ {
		mb.boxes[from] = make([]chan T, NP)
		for to := 0; to < NP; to++ {
			if to != from {
				mb.boxes[from][to] = make(chan T, depth)
			}
		}
	}
	return mb
}

func (mb *MailBox[T]) checkPair(from, to int) (err error) {
	if from < 0 || from >= mb.NP || to < 0 || to >= mb.NP || from == to {
		err = fmt.Errorf("%w: no mailbox from thread %d to thread %d (of %d)",
			ErrCommunication, from, to, mb.NP)
	}
	return
}

func (mb *MailBox[T]) PostMessage(ctx context.Context, from, to int, msg T) (err error) {
	if err = mb.checkPair(from, to); err != nil {
		return
	}
	select {
	case mb.boxes[from][to] <- msg:
	case <-ctx.Done():
		err = fmt.Errorf("%w: post %d->%d: %v", ErrCommunication, from, to, ctx.Err())
	}
	return
}

func (mb *MailBox[T]) ReceiveMessage(ctx context.Context, to, from int) (msg T, err error) {
	if err = mb.checkPair(from, to); err != nil {
		return
	}
	select {
	case msg = <-mb.boxes[from][to]:
	case <-ctx.Done():
		err = fmt.Errorf("%w: receive %d<-%d: %v", ErrCommunication, to, from, ctx.Err())
	}
	return
}

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	if bn == -1 {
		kMax = pm.MaxIndex
		return
	}
	var (
		k1, k2 = pm.GetBucketRange(bn)
	)
	kMax = k2 - k1
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// Splits one dimension into ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}
