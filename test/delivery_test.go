package test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fedpub/dal"
	"fedpub/dto"
	"fedpub/logic"
	"fedpub/shared"
	"fedpub/test/mocks"
)

type dispatcherHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockRepo     *mocks.MockIRepo
	mockKeyStore *mocks.MockIKeyStore
	mockSender   *mocks.MockIActivitySender
	mockMetrics  *mocks.MockIMetrics
}

func setupDispatcherTest(t *testing.T) (*gomock.Controller, *dispatcherHarness, logic.IDispatcher) {
	ctrl := gomock.NewController(t)
	h := dispatcherHarness{
		cfg:          &shared.Config{Host: localHost, DeliveryMaxAttempts: 8},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockRepo:     mocks.NewMockIRepo(ctrl),
		mockKeyStore: mocks.NewMockIKeyStore(ctrl),
		mockSender:   mocks.NewMockIActivitySender(ctrl),
		mockMetrics:  mocks.NewMockIMetrics(ctrl),
	}
	stubLogger(h.mockLogger)
	h.mockMetrics.EXPECT().DeliveryQueueLength(gomock.Any()).AnyTimes()
	h.mockRepo.EXPECT().ReleaseDeliveryClaims().Return(nil).AnyTimes()
	d := logic.NewDispatcher(h.cfg, h.mockLogger, h.mockRepo, h.mockKeyStore, h.mockSender,
		h.mockMetrics)
	return ctrl, &h, d
}

func waitSignal(t *testing.T, ch chan struct{}, what string) {
	select {
	case <-ch:
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func makeNoteActivity(user string) *dto.ActivityOut {
	idb := shared.IdBuilder{Host: localHost}
	return &dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      idb.ActivityUrl("test-activity"),
		Type:    "Create",
		Actor:   idb.UserUrl(user),
		To:      &[]string{shared.ActivityPublic},
	}
}

func Test_Dispatcher_Deliver_DedupsInboxes(t *testing.T) {

	// Set up
	ctrl, h, d := setupDispatcherTest(t)
	defer ctrl.Finish()
	defer d.Stop()

	sharedInbox := "https://" + callerHost + "/inbox"
	soloInbox := "https://lone.example/users/ember/inbox"
	followers := []*dal.FollowerInfo{
		{UserUrl: "https://" + callerHost + "/users/pixie", SharedInbox: sharedInbox,
			UserInbox: "https://" + callerHost + "/users/pixie/inbox"},
		{UserUrl: "https://" + callerHost + "/users/quark", SharedInbox: sharedInbox,
			UserInbox: "https://" + callerHost + "/users/quark/inbox"},
		{UserUrl: "https://lone.example/users/ember", UserInbox: soloInbox},
	}

	// Expectations: two shared-inbox followers collapse into one task
	queuedInboxes := make(map[string]bool)
	h.mockRepo.EXPECT().GetFollowers(localName, true).Return(followers, nil)
	h.mockRepo.EXPECT().AddDeliveryTask(gomock.Any()).
		DoAndReturn(func(task *dal.DeliveryTask) error {
			queuedInboxes[task.ToInbox] = true
			return nil
		}).Times(2)
	h.mockRepo.EXPECT().GetDueDeliveryTasks(gomock.Any(), gomock.Any()).
		Return(nil, 0, nil).AnyTimes()

	// Play
	err := d.Deliver(localName, makeNoteActivity(localName))

	// Check
	assert.Nil(t, err)
	assert.True(t, queuedInboxes[sharedInbox])
	assert.True(t, queuedInboxes[soloInbox])
}

func Test_Dispatcher_SendsAndRetries(t *testing.T) {

	// Set up
	ctrl, h, d := setupDispatcherTest(t)
	defer ctrl.Finish()
	defer d.Stop()

	inboxA := "https://" + callerHost + "/inbox"
	inboxB := "https://flaky.example/inbox"
	tasks := []*dal.DeliveryTask{
		{Id: 1, SendingUser: localName, ToInbox: inboxA, Payload: "{}", Attempts: 0},
		{Id: 2, SendingUser: localName, ToInbox: inboxB, Payload: "{}", Attempts: 0},
	}
	deleted := make(chan struct{})
	rescheduled := make(chan struct{})

	// Expectations
	h.mockRepo.EXPECT().AddDeliveryTask(gomock.Any()).Return(nil).Times(2)
	h.mockRepo.EXPECT().GetDueDeliveryTasks(gomock.Any(), gomock.Any()).
		Return(tasks, 2, nil)
	h.mockRepo.EXPECT().GetDueDeliveryTasks(gomock.Any(), gomock.Any()).
		Return(nil, 0, nil).AnyTimes()
	h.mockRepo.EXPECT().ClaimDeliveryTask(1).Return(true, nil)
	h.mockRepo.EXPECT().ClaimDeliveryTask(2).Return(true, nil)
	h.mockKeyStore.EXPECT().GetPrivKey(localName).Return(nil, nil).AnyTimes()
	h.mockSender.EXPECT().Send(gomock.Any(), localName, inboxA, gomock.Any()).Return(nil)
	h.mockSender.EXPECT().Send(gomock.Any(), localName, inboxB, gomock.Any()).
		Return(errors.New("connection refused"))
	h.mockRepo.EXPECT().DeleteDeliveryTask(1).DoAndReturn(func(int) error {
		close(deleted)
		return nil
	})
	h.mockMetrics.EXPECT().DeliverySucceeded()
	// First retry waits a minute
	h.mockRepo.EXPECT().UpdateDeliveryAttempt(2, 1, gomock.Cond(func(x any) bool {
		at, ok := x.(time.Time)
		if !ok {
			return false
		}
		wait := time.Until(at)
		return wait > 50*time.Second && wait < 70*time.Second
	})).DoAndReturn(func(int, int, time.Time) error {
		close(rescheduled)
		return nil
	})
	h.mockMetrics.EXPECT().DeliveryRetried()

	// Play
	act := makeNoteActivity(localName)
	assert.Nil(t, d.DeliverToInbox(localName, inboxA, act))
	assert.Nil(t, d.DeliverToInbox(localName, inboxB, act))

	// Check
	waitSignal(t, deleted, "successful task removal")
	waitSignal(t, rescheduled, "failed task reschedule")
}

func Test_Dispatcher_AbandonsAfterMaxAttempts(t *testing.T) {

	// Set up
	ctrl, h, d := setupDispatcherTest(t)
	defer ctrl.Finish()
	defer d.Stop()
	h.cfg.DeliveryMaxAttempts = 3

	inboxUrl := "https://gone.example/inbox"
	task := &dal.DeliveryTask{Id: 5, SendingUser: localName, ToInbox: inboxUrl,
		Payload: "{}", Attempts: 2}
	failed := make(chan struct{})

	// Expectations
	h.mockRepo.EXPECT().AddDeliveryTask(gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().GetDueDeliveryTasks(gomock.Any(), gomock.Any()).
		Return([]*dal.DeliveryTask{task}, 1, nil)
	h.mockRepo.EXPECT().GetDueDeliveryTasks(gomock.Any(), gomock.Any()).
		Return(nil, 0, nil).AnyTimes()
	h.mockRepo.EXPECT().ClaimDeliveryTask(5).Return(true, nil)
	h.mockKeyStore.EXPECT().GetPrivKey(localName).Return(nil, nil)
	h.mockSender.EXPECT().Send(gomock.Any(), localName, inboxUrl, gomock.Any()).
		Return(errors.New("no route to host"))
	h.mockRepo.EXPECT().MarkDeliveryFailed(5).DoAndReturn(func(int) error {
		close(failed)
		return nil
	})
	h.mockMetrics.EXPECT().DeliveryAbandoned()

	// Play: the queued task just pokes the loop; the due one is what fails
	assert.Nil(t, d.DeliverToInbox(localName, inboxUrl, makeNoteActivity(localName)))

	// Check
	waitSignal(t, failed, "delivery abandonment")
}

func Test_Dispatcher_PermanentRejection_NotRetried(t *testing.T) {

	// Set up
	ctrl, h, d := setupDispatcherTest(t)
	defer ctrl.Finish()
	defer d.Stop()

	inboxUrl := "https://hostile.example/inbox"
	task := &dal.DeliveryTask{Id: 9, SendingUser: localName, ToInbox: inboxUrl,
		Payload: "{}", Attempts: 0}
	failed := make(chan struct{})

	// Expectations: a 4xx from the peer skips the backoff schedule entirely
	h.mockRepo.EXPECT().AddDeliveryTask(gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().GetDueDeliveryTasks(gomock.Any(), gomock.Any()).
		Return([]*dal.DeliveryTask{task}, 1, nil)
	h.mockRepo.EXPECT().GetDueDeliveryTasks(gomock.Any(), gomock.Any()).
		Return(nil, 0, nil).AnyTimes()
	h.mockRepo.EXPECT().ClaimDeliveryTask(9).Return(true, nil)
	h.mockKeyStore.EXPECT().GetPrivKey(localName).Return(nil, nil)
	h.mockSender.EXPECT().Send(gomock.Any(), localName, inboxUrl, gomock.Any()).
		Return(&logic.DeliveryError{Kind: logic.DeliveryPermanent, Inbox: inboxUrl,
			Err: errors.New("got status 403 Forbidden")})
	h.mockRepo.EXPECT().MarkDeliveryFailed(9).DoAndReturn(func(int) error {
		close(failed)
		return nil
	})
	h.mockMetrics.EXPECT().DeliveryAbandoned()

	// Play
	assert.Nil(t, d.DeliverToInbox(localName, inboxUrl, makeNoteActivity(localName)))

	// Check
	waitSignal(t, failed, "terminal failure")
}

func Test_Dispatcher_ClaimLost_SkipsTask(t *testing.T) {

	// Set up
	ctrl, h, d := setupDispatcherTest(t)
	defer ctrl.Finish()
	defer d.Stop()

	inboxUrl := "https://" + callerHost + "/inbox"
	task := &dal.DeliveryTask{Id: 11, SendingUser: localName, ToInbox: inboxUrl,
		Payload: "{}", Attempts: 0}
	claimTried := make(chan struct{})

	// Expectations: the claim goes to another dispatcher; no send happens here
	h.mockRepo.EXPECT().AddDeliveryTask(gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().GetDueDeliveryTasks(gomock.Any(), gomock.Any()).
		Return([]*dal.DeliveryTask{task}, 1, nil)
	h.mockRepo.EXPECT().GetDueDeliveryTasks(gomock.Any(), gomock.Any()).
		Return(nil, 0, nil).AnyTimes()
	h.mockRepo.EXPECT().ClaimDeliveryTask(11).DoAndReturn(func(int) (bool, error) {
		close(claimTried)
		return false, nil
	})

	// Play
	assert.Nil(t, d.DeliverToInbox(localName, inboxUrl, makeNoteActivity(localName)))

	// Check
	waitSignal(t, claimTried, "claim attempt")
}
