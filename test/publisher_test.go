package test

import (
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

type publisherHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockRepo       *mocks.MockIRepo
	mockKeyStore   *mocks.MockIKeyStore
	mockMetrics    *mocks.MockIMetrics
	mockDispatcher *mocks.MockIDispatcher
}

func setupPublisherTest(t *testing.T) (*gomock.Controller, *publisherHarness, logic.IPublisher) {
	ctrl := gomock.NewController(t)
	h := publisherHarness{
		cfg:            &shared.Config{Host: localHost},
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockRepo:       mocks.NewMockIRepo(ctrl),
		mockKeyStore:   mocks.NewMockIKeyStore(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
		mockDispatcher: mocks.NewMockIDispatcher(ctrl),
	}
	stubLogger(h.mockLogger)
	pub := logic.NewPublisher(h.cfg, h.mockLogger, h.mockRepo, h.mockKeyStore, h.mockMetrics,
		h.mockDispatcher)
	return ctrl, &h, pub
}

func Test_Publisher_Webfinger_Acct(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	// Expectations
	h.mockRepo.EXPECT().DoesAccountExist(localName).Return(true, nil)

	// Play
	resp, err := pub.GetWebfinger("acct:" + localName + "@" + localHost)

	// Check
	assert.Nil(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, "acct:"+localName+"@"+localHost, resp.Subject)
		userUrl := "https://" + localHost + "/u/" + localName
		foundSelf := false
		for _, link := range resp.Links {
			if link.Rel == "self" {
				foundSelf = true
				assert.Equal(t, userUrl, link.Href)
				assert.Equal(t, "application/activity+json", link.Type)
			}
		}
		assert.True(t, foundSelf)
	}
}

func Test_Publisher_Webfinger_ActorUrl(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	// Expectations
	h.mockRepo.EXPECT().DoesAccountExist(localName).Return(true, nil)

	// Play
	resp, err := pub.GetWebfinger("https://" + localHost + "/u/" + localName)

	// Check
	assert.Nil(t, err)
	assert.NotNil(t, resp)
}

func Test_Publisher_Webfinger_WrongHost(t *testing.T) {

	// Set up
	ctrl, _, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	// Play: no repo call; the host mismatch alone decides
	resp, err := pub.GetWebfinger("acct:" + localName + "@elsewhere.example")

	// Check
	assert.Nil(t, err)
	assert.Nil(t, resp)
}

func Test_Publisher_Webfinger_UnknownUser(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	// Expectations
	h.mockRepo.EXPECT().DoesAccountExist("nobody").Return(false, nil)

	// Play
	resp, err := pub.GetWebfinger("acct:nobody@" + localHost)

	// Check
	assert.Nil(t, err)
	assert.Nil(t, resp)
}

func Test_Publisher_UserInfo(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{
		Id:        1,
		CreatedAt: time.Now().UTC(),
		Handle:    localName,
		Name:      "Alice",
		Summary:   "Test actor",
		PubKey:    "PEM-DATA",
	}

	// Expectations
	h.mockRepo.EXPECT().GetAccount(localName).Return(acct, nil)

	// Play
	info, err := pub.GetUserInfo(localName)

	// Check
	assert.Nil(t, err)
	if assert.NotNil(t, info) {
		userUrl := "https://" + localHost + "/u/" + localName
		assert.Equal(t, userUrl, info.Id)
		assert.Equal(t, "Person", info.Type)
		assert.Equal(t, localName, info.PreferredUserName)
		assert.Equal(t, userUrl+"/inbox", info.Inbox)
		assert.Equal(t, "https://"+localHost+"/inbox", info.Endpoints.SharedInbox)
		assert.Equal(t, userUrl+"#main-key", info.PublicKey.Id)
		assert.Equal(t, "PEM-DATA", info.PublicKey.PublicKeyPem)
	}
}

func Test_Publisher_CreateActor(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	stored := &dal.Account{Id: 1, Handle: localName, Name: "Alice", PubKey: "PEM-DATA"}

	// Expectations
	h.mockRepo.EXPECT().AddAccountIfNotExist(cond(func(a *dal.Account) bool {
		return a.Handle == localName && a.UserUrl == "https://"+localHost+"/u/"+localName
	}), "").Return(true, nil)
	h.mockKeyStore.EXPECT().EnsureKeyPair(localName).Return(nil)
	h.mockRepo.EXPECT().GetAccount(localName).Return(stored, nil)

	// Play
	acct, isNew, err := pub.CreateActor(localName, "Alice", "")

	// Check
	assert.Nil(t, err)
	assert.True(t, isNew)
	assert.Equal(t, stored, acct)
}

func Test_Publisher_CreateActor_BadHandle(t *testing.T) {

	// Set up
	ctrl, _, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	// Play
	acct, isNew, err := pub.CreateActor("no spaces allowed", "Alice", "")

	// Check
	assert.NotNil(t, err)
	assert.False(t, isNew)
	assert.Nil(t, acct)
}

func Test_Publisher_UpsertNote_New(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Handle: localName}
	contentUrl := "https://blog.example/posts/first"
	objectId := "https://" + localHost + "/u/" + localName + "/status/12345"

	// Expectations
	h.mockRepo.EXPECT().GetAccount(localName).Return(acct, nil)
	h.mockRepo.EXPECT().GetNoteByUrlHash(1, gomock.Any(), contentUrl).Return(nil, nil)
	h.mockRepo.EXPECT().GetNextId().Return(uint64(12345))
	h.mockRepo.EXPECT().AddNote(cond(func(n *dal.Note) bool {
		return n.AccountId == 1 && n.ObjectId == objectId && n.ContentUrl == contentUrl
	})).Return(nil)
	h.mockRepo.EXPECT().MarkActivityReceived(cond(func(ai *dal.ActivityInfo) bool {
		return ai.Type == "Create" && ai.Direction == "out"
	})).Return(false, nil)
	h.mockDispatcher.EXPECT().Deliver(localName, cond(func(act *dto.ActivityOut) bool {
		note, ok := act.Object.(*dto.Note)
		return act.Type == "Create" && act.Id == objectId+"/activity" &&
			ok && note.Id == objectId
	})).Return(nil)
	h.mockMetrics.EXPECT().NotePublished()

	// Play
	note, isNew, err := pub.UpsertNote(localName, contentUrl, "<p>Hello fediverse!</p>")

	// Check
	assert.Nil(t, err)
	assert.True(t, isNew)
	assert.Equal(t, objectId, note.ObjectId)
}

func Test_Publisher_UpsertNote_UnchangedContent(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Handle: localName}
	contentUrl := "https://blog.example/posts/first"
	existing := &dal.Note{Id: 9, AccountId: 1, ContentUrl: contentUrl,
		Content: "<p>Hello fediverse!</p>"}

	// Expectations: same content means no update and no delivery
	h.mockRepo.EXPECT().GetAccount(localName).Return(acct, nil)
	h.mockRepo.EXPECT().GetNoteByUrlHash(1, gomock.Any(), contentUrl).Return(existing, nil)

	// Play
	note, isNew, err := pub.UpsertNote(localName, contentUrl, "<p>Hello fediverse!</p>")

	// Check
	assert.Nil(t, err)
	assert.False(t, isNew)
	assert.Equal(t, existing, note)
}

func Test_Publisher_UpsertNote_ChangedContent(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Handle: localName}
	contentUrl := "https://blog.example/posts/first"
	objectId := "https://" + localHost + "/u/" + localName + "/status/12345"
	existing := &dal.Note{Id: 9, AccountId: 1, ContentUrl: contentUrl, ObjectId: objectId,
		Content: "<p>Old text</p>", PublishedAt: time.Now().UTC().Add(-time.Hour)}

	// Expectations
	h.mockRepo.EXPECT().GetAccount(localName).Return(acct, nil)
	h.mockRepo.EXPECT().GetNoteByUrlHash(1, gomock.Any(), contentUrl).Return(existing, nil)
	h.mockRepo.EXPECT().UpdateNoteContent(9, "<p>New text</p>", gomock.Any()).Return(nil)
	h.mockRepo.EXPECT().MarkActivityReceived(cond(func(ai *dal.ActivityInfo) bool {
		return ai.Type == "Update" && ai.Direction == "out"
	})).Return(false, nil)
	h.mockDispatcher.EXPECT().Deliver(localName, cond(func(act *dto.ActivityOut) bool {
		note, ok := act.Object.(*dto.Note)
		return act.Type == "Update" && ok && note.Content == "<p>New text</p>" &&
			note.Updated != nil
	})).Return(nil)

	// Play
	note, isNew, err := pub.UpsertNote(localName, contentUrl, "<p>New text</p>")

	// Check
	assert.Nil(t, err)
	assert.False(t, isNew)
	assert.Equal(t, "<p>New text</p>", note.Content)
}

func Test_Publisher_DeleteNote(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Handle: localName}
	contentUrl := "https://blog.example/posts/first"
	objectId := "https://" + localHost + "/u/" + localName + "/status/12345"
	existing := &dal.Note{Id: 9, AccountId: 1, ContentUrl: contentUrl, ObjectId: objectId}

	// Expectations
	h.mockRepo.EXPECT().GetAccount(localName).Return(acct, nil)
	h.mockRepo.EXPECT().GetNoteByUrlHash(1, gomock.Any(), contentUrl).Return(existing, nil)
	h.mockRepo.EXPECT().DeleteNote(9).Return(nil)
	h.mockRepo.EXPECT().MarkActivityReceived(cond(func(ai *dal.ActivityInfo) bool {
		return ai.Type == "Delete" && ai.Direction == "out"
	})).Return(false, nil)
	h.mockDispatcher.EXPECT().Deliver(localName, cond(func(act *dto.ActivityOut) bool {
		ts, ok := act.Object.(dto.Tombstone)
		return act.Type == "Delete" && act.Id == objectId+"/delete" &&
			ok && ts.Id == objectId
	})).Return(nil)

	// Play
	found, err := pub.DeleteNote(localName, contentUrl)

	// Check
	assert.Nil(t, err)
	assert.True(t, found)
}

func Test_Publisher_DeleteNote_NotFound(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Handle: localName}
	contentUrl := "https://blog.example/posts/unknown"

	// Expectations
	h.mockRepo.EXPECT().GetAccount(localName).Return(acct, nil)
	h.mockRepo.EXPECT().GetNoteByUrlHash(1, gomock.Any(), contentUrl).Return(nil, nil)

	// Play
	found, err := pub.DeleteNote(localName, contentUrl)

	// Check
	assert.Nil(t, err)
	assert.False(t, found)
}

func Test_Publisher_OutboxSummary(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	// Expectations
	h.mockRepo.EXPECT().DoesAccountExist(localName).Return(true, nil)
	h.mockRepo.EXPECT().GetNoteCount(localName).Return(uint(3), nil)

	// Play
	resp, err := pub.GetOutboxSummary(localName)

	// Check
	assert.Nil(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, uint(3), resp.TotalItems)
		if assert.NotNil(t, resp.First) {
			assert.Equal(t, "https://"+localHost+"/u/"+localName+"/outbox?page=true", *resp.First)
		}
	}
}

func Test_Publisher_FollowersPage_NoNextOnShortPage(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Handle: localName}
	followers := []*dal.FollowerInfo{
		{Id: 30, UserUrl: "https://" + callerHost + "/users/pixie"},
		{Id: 21, UserUrl: "https://" + callerHost + "/users/quark"},
	}

	// Expectations
	h.mockRepo.EXPECT().GetAccount(localName).Return(acct, nil)
	h.mockRepo.EXPECT().GetFollowersPage(1, 0, 20).Return(followers, nil)

	// Play
	page, err := pub.GetFollowersPage(localName, 0)

	// Check
	assert.Nil(t, err)
	if assert.NotNil(t, page) {
		assert.Equal(t, 2, len(page.OrderedItems))
		assert.Equal(t, "https://"+callerHost+"/users/pixie", page.OrderedItems[0])
		assert.Nil(t, page.Next)
	}
}

func Test_Publisher_FollowingSummary_AlwaysEmpty(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	// Expectations
	h.mockRepo.EXPECT().DoesAccountExist(localName).Return(true, nil)

	// Play
	resp, err := pub.GetFollowingSummary(localName)

	// Check
	assert.Nil(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, uint(0), resp.TotalItems)
		assert.Nil(t, resp.First)
	}
}

func Test_Publisher_GetStatus(t *testing.T) {

	// Set up
	ctrl, h, pub := setupPublisherTest(t)
	defer ctrl.Finish()

	objectId := "https://" + localHost + "/u/" + localName + "/status/12345"
	stored := &dal.Note{Id: 9, AccountId: 1, ObjectId: objectId, Content: "<p>Hi</p>",
		PublishedAt: time.Now().UTC()}

	// Expectations
	h.mockRepo.EXPECT().GetNoteByObjectId(objectId).Return(stored, nil)

	// Play
	note, err := pub.GetStatus(localName, 12345)

	// Check
	assert.Nil(t, err)
	if assert.NotNil(t, note) {
		assert.Equal(t, objectId, note.Id)
		assert.Equal(t, "<p>Hi</p>", note.Content)
		assert.Nil(t, note.Updated)
	}
}
