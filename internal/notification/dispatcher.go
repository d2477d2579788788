package notification

import (
	"context"
	"sync"
	"time"

	notificationdomain "findit-backend/internal/notification/domain"
	"findit-backend/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// GroupSender performs one group fan-out.
type GroupSender interface {
	SendToGroup(ctx context.Context, groupID string, payload notificationdomain.Payload, excludeUserID string) error
}

// Job is one queued group fan-out.
type Job struct {
	GroupID       string
	Payload       notificationdomain.Payload
	ExcludeUserID string
}

// Dispatcher runs group notifications on a fixed pool of workers so request
// handlers never wait on the push gateway.
type Dispatcher struct {
	sender      GroupSender
	jobQueue    chan Job
	workerWg    sync.WaitGroup
	workerCount int
	timeout     time.Duration
	log         logrus.FieldLogger

	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewDispatcher creates a dispatcher. Non-positive sizes fall back to defaults.
func NewDispatcher(sender GroupSender, workerCount, queueSize int, timeout time.Duration, log logrus.FieldLogger) *Dispatcher {
	if workerCount <= 0 {
		workerCount = 3
	}
	if queueSize <= 0 {
		queueSize = 500
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Dispatcher{
		sender:      sender,
		jobQueue:    make(chan Job, queueSize),
		workerCount: workerCount,
		timeout:     timeout,
		log:         log.WithField("component", "dispatcher"),
	}
}

// Start launches the workers. Calling it twice is a no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped {
		return
	}

	for i := 0; i < d.workerCount; i++ {
		d.workerWg.Add(1)
		go d.worker(i)
	}
	d.started = true
	d.log.WithField("workers", d.workerCount).Info("dispatcher started")
}

// Stop refuses new jobs, drains the queue and waits for the workers.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobQueue)
	d.mu.Unlock()

	d.workerWg.Wait()
	d.log.Info("dispatcher stopped")
}

// NotifyGroup queues a fan-out without blocking. The job is dropped when the
// queue is full or the dispatcher has stopped.
func (d *Dispatcher) NotifyGroup(groupID string, payload notificationdomain.Payload, excludeUserID string) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	log := d.log.WithFields(logrus.Fields{"group_id": groupID, "type": payload.Data["type"]})
	if d.stopped {
		metrics.RecordNotificationJob("dropped")
		log.Warn("dispatcher stopped, dropping notification")
		return
	}

	select {
	case d.jobQueue <- Job{GroupID: groupID, Payload: payload, ExcludeUserID: excludeUserID}:
	default:
		metrics.RecordNotificationJob("dropped")
		log.Warn("notification queue full, dropping notification")
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.workerWg.Done()

	for job := range d.jobQueue {
		d.process(job)
	}

	d.log.WithField("worker", id).Debug("worker stopped")
}

func (d *Dispatcher) process(job Job) {
	log := d.log.WithField("group_id", job.GroupID)
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordNotificationJob("failed")
			log.WithField("panic", r).Error("notification job panicked")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sender.SendToGroup(ctx, job.GroupID, job.Payload, job.ExcludeUserID); err != nil {
		metrics.RecordNotificationJob("failed")
		log.WithError(err).Warn("group notification failed")
		return
	}
	metrics.RecordNotificationJob("sent")
}
