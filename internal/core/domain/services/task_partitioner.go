package services

import (
	"sort"
	"time"

	"atelier/internal/core/domain/model/task"
)

// PartitionItem is the view of a task that PartitionTasks needs. Query
// projections implement it so they can be partitioned without conversion.
type PartitionItem interface {
	// Key identifies the slot a task occupies: order number and stage.
	Key() (orderNumber string, stage task.Stage)
	TaskStatus() task.Status
	Reassigned() bool
	LastUpdated() time.Time
	// SortID breaks ties between tasks updated at the same instant.
	SortID() string
}

// Partition groups tasks into the four columns of a staff task board.
type Partition[T PartitionItem] struct {
	Pending    []T
	InProgress []T
	Done       []T
	Reassigned []T
}

type slotKey struct {
	orderNumber string
	stage       task.Stage
}

// PartitionTasks deduplicates tasks by (order number, stage), keeping the most
// recently updated one, and buckets the survivors by status.
//
// A task lands in Reassigned when it is flagged as reassigned or carries the
// Reassigned status; otherwise its status picks the bucket. Every bucket is
// ordered by last update (newest first), ties broken by SortID, so the result
// does not depend on input order.
func PartitionTasks[T PartitionItem](tasks []T) Partition[T] {
	latest := make(map[slotKey]T, len(tasks))
	for _, t := range tasks {
		number, stage := t.Key()
		k := slotKey{orderNumber: number, stage: stage}
		current, seen := latest[k]
		if !seen || newer(t, current) {
			latest[k] = t
		}
	}

	survivors := make([]T, 0, len(latest))
	for _, t := range latest {
		survivors = append(survivors, t)
	}
	sort.Slice(survivors, func(i, j int) bool {
		return newer(survivors[i], survivors[j])
	})

	var p Partition[T]
	for _, t := range survivors {
		switch {
		case t.Reassigned() || t.TaskStatus() == task.Reassigned:
			p.Reassigned = append(p.Reassigned, t)
		case t.TaskStatus() == task.InProgress:
			p.InProgress = append(p.InProgress, t)
		case t.TaskStatus() == task.Done:
			p.Done = append(p.Done, t)
		default:
			p.Pending = append(p.Pending, t)
		}
	}
	return p
}

// newer orders a before b: later update first, then smaller SortID.
func newer[T PartitionItem](a, b T) bool {
	if !a.LastUpdated().Equal(b.LastUpdated()) {
		return a.LastUpdated().After(b.LastUpdated())
	}
	return a.SortID() < b.SortID()
}
