package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	notificationdomain "findit-backend/internal/notification/domain"

	"github.com/stretchr/testify/assert"
)

type recordingSender struct {
	mu       sync.Mutex
	groups   []string
	excluded []string
	err      error
	panicOn  string
	deadline bool
}

func (r *recordingSender) SendToGroup(ctx context.Context, groupID string, _ notificationdomain.Payload, excludeUserID string) error {
	if groupID == r.panicOn {
		panic("boom")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, r.deadline = ctx.Deadline()
	r.groups = append(r.groups, groupID)
	r.excluded = append(r.excluded, excludeUserID)
	return r.err
}

func (r *recordingSender) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.groups...)
}

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 2, 10, time.Second, quietLogger())
	d.Start()

	for _, g := range []string{"g1", "g2", "g3"} {
		d.NotifyGroup(g, notificationdomain.Payload{}, "author")
	}
	d.Stop()

	assert.ElementsMatch(t, []string{"g1", "g2", "g3"}, sender.snapshot())
	assert.Equal(t, []string{"author", "author", "author"}, sender.excluded)
	assert.True(t, sender.deadline)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 1, 1, time.Second, quietLogger())

	// Workers are not running yet, so the second job finds the queue full.
	d.NotifyGroup("g1", notificationdomain.Payload{}, "")
	d.NotifyGroup("g2", notificationdomain.Payload{}, "")

	d.Start()
	d.Stop()

	assert.Equal(t, []string{"g1"}, sender.snapshot())
}

func TestDispatcher_SurvivesFailuresAndPanics(t *testing.T) {
	sender := &recordingSender{err: errors.New("send failed"), panicOn: "bad"}
	d := NewDispatcher(sender, 1, 10, time.Second, quietLogger())
	d.Start()

	d.NotifyGroup("bad", notificationdomain.Payload{}, "")
	d.NotifyGroup("g1", notificationdomain.Payload{}, "")
	d.Stop()

	assert.Equal(t, []string{"g1"}, sender.snapshot())
}

func TestDispatcher_AfterStopIsNoop(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 1, 10, time.Second, quietLogger())
	d.Start()
	d.Stop()

	assert.NotPanics(t, func() {
		d.NotifyGroup("g1", notificationdomain.Payload{}, "")
		d.Stop()
	})
	assert.Empty(t, sender.snapshot())
}
