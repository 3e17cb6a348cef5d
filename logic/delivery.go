package logic

import (
	"encoding/json"
	"errors"
	"time"

	"fedpub/dal"
	"fedpub/dto"
	"fedpub/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_dispatcher.go -package mocks fedpub/logic IDispatcher

type IDispatcher interface {
	// Deliver fans the activity out to the inboxes of the user's accepted
	// followers, one queued task per distinct inbox.
	Deliver(byUser string, activity *dto.ActivityOut) error
	// DeliverToInbox queues the activity for a single inbox.
	DeliverToInbox(byUser, inboxUrl string, activity *dto.ActivityOut) error
	// Stop shuts down the delivery loop; returns once the loop has exited.
	// Queued tasks stay in the DB and are picked up on next start.
	Stop()
}

const maxParallelSends = 5
const deliveryLoopIdleWakeSec = 5

// Wait before re-attempting a failed delivery, by attempt count.
// Past the end, the last entry repeats.
var retryBackoff = []time.Duration{
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	time.Hour,
	4 * time.Hour,
	24 * time.Hour,
}

type sendOutcome struct {
	taskId int
	ok     bool
}

type dispatcher struct {
	cfg        *shared.Config
	logger     shared.ILogger
	repo       dal.IRepo
	keyStore   IKeyStore
	sender     IActivitySender
	metrics    IMetrics
	newTasks   chan struct{}
	shutdown   chan struct{}
	stopped    chan struct{}
	inProgress map[int]interface{}
}

func NewDispatcher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
	sender IActivitySender,
	metrics IMetrics,
) IDispatcher {

	d := dispatcher{
		cfg:      cfg,
		logger:   logger,
		repo:     repo,
		keyStore: keyStore,
		sender:   sender,
		metrics:  metrics,
	}

	d.newTasks = make(chan struct{})
	d.shutdown = make(chan struct{})
	d.stopped = make(chan struct{})
	d.inProgress = make(map[int]interface{})
	go d.deliveryLoop()

	return &d
}

func (d *dispatcher) Deliver(byUser string, activity *dto.ActivityOut) error {

	followers, err := d.repo.GetFollowers(byUser, true)
	if err != nil {
		return err
	}

	// Collect distinct inboxes; shared inbox when the peer has one
	inboxes := make(map[string]struct{})
	for _, f := range followers {
		inboxName := f.SharedInbox
		if inboxName == "" {
			inboxName = f.UserInbox
		}
		if _, exists := inboxes[inboxName]; !exists {
			inboxes[inboxName] = struct{}{}
		}
	}

	if len(inboxes) == 0 {
		return nil
	}

	bodyJson, err := json.Marshal(activity)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	for inboxUrl := range inboxes {
		err = d.repo.AddDeliveryTask(&dal.DeliveryTask{
			SendingUser:   byUser,
			ToInbox:       inboxUrl,
			ActivityId:    activity.Id,
			Payload:       string(bodyJson),
			NextAttemptAt: now,
		})
		if err != nil {
			return err
		}
	}

	d.poke()

	return nil
}

func (d *dispatcher) DeliverToInbox(byUser, inboxUrl string, activity *dto.ActivityOut) error {

	bodyJson, err := json.Marshal(activity)
	if err != nil {
		return err
	}
	err = d.repo.AddDeliveryTask(&dal.DeliveryTask{
		SendingUser:   byUser,
		ToInbox:       inboxUrl,
		ActivityId:    activity.Id,
		Payload:       string(bodyJson),
		NextAttemptAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	d.poke()

	return nil
}

func (d *dispatcher) Stop() {
	close(d.shutdown)
	<-d.stopped
}

func (d *dispatcher) poke() {
	go func() {
		select {
		case d.newTasks <- struct{}{}:
		case <-d.shutdown:
		}
	}()
}

func (d *dispatcher) deliveryLoop() {

	defer close(d.stopped)

	// Claims taken by a previous run died with it
	if err := d.repo.ReleaseDeliveryClaims(); err != nil {
		d.logger.Errorf("Failed to release stale delivery claims: %v", err)
	}

	taskDone := make(chan sendOutcome)

	sendDue := func() {
		if len(d.inProgress) >= maxParallelSends {
			return
		}
		var err error
		var tasks []*dal.DeliveryTask
		var qlen int
		tasks, qlen, err = d.repo.GetDueDeliveryTasks(time.Now().UTC(), maxParallelSends)
		if err != nil {
			d.logger.Errorf("Failed to get due delivery tasks: %v", err)
			return
		}
		d.metrics.DeliveryQueueLength(qlen)
		for _, task := range tasks {
			if len(d.inProgress) >= maxParallelSends {
				break
			}
			// Already being sent by an earlier pass
			if _, busy := d.inProgress[task.Id]; busy {
				continue
			}
			var claimed bool
			if claimed, err = d.repo.ClaimDeliveryTask(task.Id); err != nil {
				d.logger.Errorf("Failed to claim delivery task %d: %v", task.Id, err)
				continue
			}
			// Another dispatcher got there first
			if !claimed {
				continue
			}
			d.inProgress[task.Id] = struct{}{}
			go d.sendTask(task, taskDone)
		}
	}

	finishTask := func(outcome sendOutcome) {
		delete(d.inProgress, outcome.taskId)
		if outcome.ok {
			if err := d.repo.DeleteDeliveryTask(outcome.taskId); err != nil {
				d.logger.Errorf("Failed to remove delivered task from queue: %d: %v", outcome.taskId, err)
			}
			d.metrics.DeliverySucceeded()
		}
	}

	for {
		select {
		case <-d.shutdown:
			return
		case <-d.newTasks:
			d.logger.Debug("New tasks in delivery queue")
			sendDue()
		case <-time.After(deliveryLoopIdleWakeSec * time.Second):
			sendDue()
		case outcome := <-taskDone:
			d.logger.Debugf("Delivery task finished: %d (ok: %v)", outcome.taskId, outcome.ok)
			finishTask(outcome)
			sendDue()
		}
	}
}

func (d *dispatcher) sendTask(task *dal.DeliveryTask, taskDone chan sendOutcome) {

	err := d.trySend(task)
	if err == nil {
		taskDone <- sendOutcome{task.Id, true}
		return
	}

	d.logger.Warnf("Delivery to %s failed (attempt %d): %v", task.ToInbox, task.Attempts+1, err)
	d.reschedule(task, err)
	taskDone <- sendOutcome{task.Id, false}
}

func (d *dispatcher) trySend(task *dal.DeliveryTask) error {
	privKey, err := d.keyStore.GetPrivKey(task.SendingUser)
	if err != nil {
		return err
	}
	return d.sender.Send(privKey, task.SendingUser, task.ToInbox, []byte(task.Payload))
}

func (d *dispatcher) reschedule(task *dal.DeliveryTask, sendErr error) {

	// A peer's definitive rejection never gets better with retries
	var dErr *DeliveryError
	if errors.As(sendErr, &dErr) && dErr.Kind == DeliveryPermanent {
		d.logger.Warnf("Peer rejected delivery to %s, not retrying", task.ToInbox)
		if err := d.repo.MarkDeliveryFailed(task.Id); err != nil {
			d.logger.Errorf("Failed to mark delivery task failed: %d: %v", task.Id, err)
		}
		d.metrics.DeliveryAbandoned()
		return
	}

	attempts := task.Attempts + 1
	if attempts >= d.cfg.DeliveryMaxAttempts {
		exhausted := &DeliveryError{Kind: DeliveryExhausted, Inbox: task.ToInbox, Err: sendErr}
		d.logger.Warnf("Abandoning after %d attempts: %v", attempts, exhausted)
		if err := d.repo.MarkDeliveryFailed(task.Id); err != nil {
			d.logger.Errorf("Failed to mark delivery task failed: %d: %v", task.Id, err)
		}
		d.metrics.DeliveryAbandoned()
		return
	}

	backoffIx := attempts - 1
	if backoffIx >= len(retryBackoff) {
		backoffIx = len(retryBackoff) - 1
	}
	nextAt := time.Now().UTC().Add(retryBackoff[backoffIx])
	if err := d.repo.UpdateDeliveryAttempt(task.Id, attempts, nextAt); err != nil {
		d.logger.Errorf("Failed to reschedule delivery task: %d: %v", task.Id, err)
	}
	d.metrics.DeliveryRetried()
}
