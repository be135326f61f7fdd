package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

type messageSubscriber struct {
	ch chan *model.Message
}

type messageRepository struct {
	mu       sync.RWMutex
	messages map[types.ReportID][]*model.Message
	subs     map[types.ReportID]map[int]*messageSubscriber
	nextSub  int
}

func newMessageRepository() *messageRepository {
	return &messageRepository{
		messages: make(map[types.ReportID][]*model.Message),
		subs:     make(map[types.ReportID]map[int]*messageSubscriber),
	}
}

func (r *messageRepository) Append(ctx context.Context, msg *model.Message) error {
	if msg == nil {
		return goerr.New("message is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := msg.Clone()
	r.messages[stored.ReportID] = append(r.messages[stored.ReportID], stored)

	for _, sub := range r.subs[stored.ReportID] {
		select {
		case sub.ch <- stored.Clone():
		default:
			// slow subscriber: drop the delta, the next List call reconciles
		}
	}
	return nil
}

func (r *messageRepository) List(ctx context.Context, reportID types.ReportID) ([]*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(reportID), nil
}

// sortedLocked returns a sorted copy of a case's log. Callers must hold at
// least the read lock.
func (r *messageRepository) sortedLocked(reportID types.ReportID) []*model.Message {
	msgs := make([]*model.Message, 0, len(r.messages[reportID]))
	for _, m := range r.messages[reportID] {
		msgs = append(msgs, m.Clone())
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].SentAt.Before(msgs[j].SentAt)
	})
	return msgs
}

func (r *messageRepository) Watch(ctx context.Context, reportID types.ReportID) (<-chan *model.Message, error) {
	r.mu.Lock()

	sub := &messageSubscriber{ch: make(chan *model.Message, 64)}
	if r.subs[reportID] == nil {
		r.subs[reportID] = make(map[int]*messageSubscriber)
	}
	id := r.nextSub
	r.nextSub++
	r.subs[reportID][id] = sub

	// replay the current log before any live delta
	backlog := r.sortedLocked(reportID)
	r.mu.Unlock()

	out := make(chan *model.Message, 64)
	go func() {
		defer func() {
			r.mu.Lock()
			delete(r.subs[reportID], id)
			r.mu.Unlock()
			close(out)
		}()

		for _, m := range backlog {
			select {
			case out <- m:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case m := <-sub.ch:
				select {
				case out <- m:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *messageRepository) DeleteByReport(ctx context.Context, reportID types.ReportID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.messages, reportID)
	return nil
}
