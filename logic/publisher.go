package logic

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/spaolacci/murmur3"

	"fedpub/dal"
	"fedpub/dto"
	"fedpub/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_publisher.go -package mocks fedpub/logic IPublisher

// IPublisher serves the local side of federation: actor documents,
// collections, and publishing notes to followers.
type IPublisher interface {
	GetWebfinger(resource string) (*dto.WebfingerResp, error)
	GetUserInfo(user string) (*dto.UserInfo, error)
	GetOutboxSummary(user string) (*dto.OrderedListSummary, error)
	GetOutboxPage(user string, maxId int) (*dto.OrderedCollectionPage, error)
	GetFollowersSummary(user string) (*dto.OrderedListSummary, error)
	GetFollowersPage(user string, maxId int) (*dto.OrderedCollectionPage, error)
	GetFollowingSummary(user string) (*dto.OrderedListSummary, error)
	GetStatus(user string, statusId uint64) (*dto.Note, error)
	CreateActor(handle, name, summary string) (acct *dal.Account, isNew bool, err error)
	UpsertNote(user, contentUrl, content string) (note *dal.Note, isNew bool, err error)
	DeleteNote(user, contentUrl string) (found bool, err error)
}

const collectionPageSize = 20

var apubContext = []string{
	"https://www.w3.org/ns/activitystreams",
	"https://w3id.org/security/v1",
}

type publisher struct {
	cfg        *shared.Config
	logger     shared.ILogger
	idb        shared.IdBuilder
	repo       dal.IRepo
	keyStore   IKeyStore
	metrics    IMetrics
	dispatcher IDispatcher
	sanitizer  *bluemonday.Policy
}

func NewPublisher(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	keyStore IKeyStore,
	metrics IMetrics,
	dispatcher IDispatcher,
) IPublisher {
	return &publisher{cfg, logger, shared.IdBuilder{Host: cfg.Host}, repo, keyStore, metrics,
		dispatcher, bluemonday.UGCPolicy()}
}

// === Federation read surface ===============================================

func (pub *publisher) GetWebfinger(resource string) (*dto.WebfingerResp, error) {

	user, ok := pub.parseWebfingerResource(resource)
	if !ok {
		return nil, nil
	}

	exists, err := pub.repo.DoesAccountExist(user)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	userUrl := pub.idb.UserUrl(user)
	resp := dto.WebfingerResp{
		Subject: fmt.Sprintf("acct:%s@%s", user, pub.cfg.Host),
		Aliases: []string{userUrl},
		Links: []dto.WebfingerLink{
			{
				Rel:  "self",
				Type: "application/activity+json",
				Href: userUrl,
			},
			{
				Rel:  "http://webfinger.net/rel/profile-page",
				Type: "text/html",
				Href: userUrl,
			},
		},
	}
	return &resp, nil
}

// parseWebfingerResource accepts both acct:user@host and the actor URL.
func (pub *publisher) parseWebfingerResource(resource string) (user string, ok bool) {

	if acct, found := strings.CutPrefix(resource, "acct:"); found {
		acct = strings.TrimPrefix(acct, "@")
		atIx := strings.IndexByte(acct, '@')
		if atIx == -1 || acct[atIx+1:] != pub.cfg.Host {
			return "", false
		}
		return acct[:atIx], true
	}

	prefix := pub.idb.UserUrl("")
	if user, found := strings.CutPrefix(resource, prefix); found && !strings.Contains(user, "/") {
		return user, user != ""
	}
	return "", false
}

func (pub *publisher) GetUserInfo(user string) (*dto.UserInfo, error) {

	acct, err := pub.repo.GetAccount(user)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, nil
	}

	userUrl := pub.idb.UserUrl(user)
	info := dto.UserInfo{
		Context:           apubContext,
		Id:                userUrl,
		Type:              "Person",
		PreferredUserName: acct.Handle,
		Name:              acct.Name,
		Summary:           acct.Summary,
		ManuallyApproves:  false,
		Published:         acct.CreatedAt.UTC().Format(time.RFC3339),
		Inbox:             pub.idb.UserInbox(user),
		Outbox:            pub.idb.UserOutbox(user),
		Followers:         pub.idb.UserFollowers(user),
		Following:         pub.idb.UserFollowing(user),
		Endpoints:         dto.UserEndpoints{SharedInbox: pub.idb.SharedInbox()},
		PublicKey: dto.PublicKey{
			Id:           pub.idb.UserKeyId(user),
			Owner:        userUrl,
			PublicKeyPem: acct.PubKey,
		},
	}
	return &info, nil
}

func (pub *publisher) GetOutboxSummary(user string) (*dto.OrderedListSummary, error) {

	exists, err := pub.repo.DoesAccountExist(user)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	count, err := pub.repo.GetNoteCount(user)
	if err != nil {
		return nil, err
	}
	outboxUrl := pub.idb.UserOutbox(user)
	resp := dto.OrderedListSummary{
		Context:    apubContext[0],
		Id:         outboxUrl,
		Type:       "OrderedCollection",
		TotalItems: count,
	}
	if count > 0 {
		first := outboxUrl + "?page=true"
		resp.First = &first
	}
	return &resp, nil
}

func (pub *publisher) GetOutboxPage(user string, maxId int) (*dto.OrderedCollectionPage, error) {

	acct, err := pub.repo.GetAccount(user)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, nil
	}

	notes, err := pub.repo.GetNotesPage(acct.Id, maxId, collectionPageSize)
	if err != nil {
		return nil, err
	}

	items := make([]any, 0, len(notes))
	for _, note := range notes {
		items = append(items, pub.makeCreateActivity(user, note))
	}

	outboxUrl := pub.idb.UserOutbox(user)
	page := pub.makeCollectionPage(outboxUrl, maxId, items)
	if len(notes) == collectionPageSize {
		next := fmt.Sprintf("%s?page=true&max_id=%d", outboxUrl, notes[len(notes)-1].Id)
		page.Next = &next
	}
	return page, nil
}

func (pub *publisher) GetFollowersSummary(user string) (*dto.OrderedListSummary, error) {

	exists, err := pub.repo.DoesAccountExist(user)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	count, err := pub.repo.GetFollowerCount(user, true)
	if err != nil {
		return nil, err
	}
	followersUrl := pub.idb.UserFollowers(user)
	resp := dto.OrderedListSummary{
		Context:    apubContext[0],
		Id:         followersUrl,
		Type:       "OrderedCollection",
		TotalItems: count,
	}
	if count > 0 {
		first := followersUrl + "?page=true"
		resp.First = &first
	}
	return &resp, nil
}

func (pub *publisher) GetFollowersPage(user string, maxId int) (*dto.OrderedCollectionPage, error) {

	acct, err := pub.repo.GetAccount(user)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, nil
	}

	followers, err := pub.repo.GetFollowersPage(acct.Id, maxId, collectionPageSize)
	if err != nil {
		return nil, err
	}

	items := make([]any, 0, len(followers))
	for _, f := range followers {
		items = append(items, f.UserUrl)
	}

	followersUrl := pub.idb.UserFollowers(user)
	page := pub.makeCollectionPage(followersUrl, maxId, items)
	if len(followers) == collectionPageSize {
		next := fmt.Sprintf("%s?page=true&max_id=%d", followersUrl, followers[len(followers)-1].Id)
		page.Next = &next
	}
	return page, nil
}

func (pub *publisher) GetFollowingSummary(user string) (*dto.OrderedListSummary, error) {

	exists, err := pub.repo.DoesAccountExist(user)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	// Local actors don't follow anyone
	resp := dto.OrderedListSummary{
		Context:    apubContext[0],
		Id:         pub.idb.UserFollowing(user),
		Type:       "OrderedCollection",
		TotalItems: 0,
	}
	return &resp, nil
}

func (pub *publisher) makeCollectionPage(collUrl string, maxId int, items []any) *dto.OrderedCollectionPage {
	pageId := collUrl + "?page=true"
	if maxId != 0 {
		pageId = fmt.Sprintf("%s?page=true&max_id=%d", collUrl, maxId)
	}
	return &dto.OrderedCollectionPage{
		Context:      apubContext[0],
		Id:           pageId,
		Type:         "OrderedCollectionPage",
		PartOf:       collUrl,
		OrderedItems: items,
	}
}

func (pub *publisher) GetStatus(user string, statusId uint64) (*dto.Note, error) {

	objectId := pub.idb.UserStatus(user, statusId)
	note, err := pub.repo.GetNoteByObjectId(objectId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	res := pub.makeNoteDto(user, note)
	res.Context = apubContext[0]
	return res, nil
}

// === Actor and note management =============================================

func (pub *publisher) CreateActor(handle, name, summary string) (acct *dal.Account, isNew bool, err error) {

	if err = shared.ValidateHandle(handle); err != nil {
		return nil, false, err
	}

	newAcct := dal.Account{
		CreatedAt: time.Now().UTC(),
		UserUrl:   pub.idb.UserUrl(handle),
		Handle:    handle,
		Name:      name,
		Summary:   shared.TruncateWithEllipsis(summary, shared.MaxSummaryLen),
	}
	if isNew, err = pub.repo.AddAccountIfNotExist(&newAcct, ""); err != nil {
		return nil, false, err
	}

	if err = pub.keyStore.EnsureKeyPair(handle); err != nil {
		return nil, false, err
	}

	if acct, err = pub.repo.GetAccount(handle); err != nil {
		return nil, false, err
	}
	if isNew {
		pub.logger.Infof("Created actor %s", handle)
	}
	return acct, isNew, nil
}

// UpsertNote creates or updates the note behind contentUrl and federates a
// Create or Update to followers. Same content twice is a no-op.
func (pub *publisher) UpsertNote(user, contentUrl, content string) (note *dal.Note, isNew bool, err error) {

	var acct *dal.Account
	if acct, err = pub.repo.GetAccount(user); err != nil {
		return nil, false, err
	}
	if acct == nil {
		return nil, false, fmt.Errorf("no such account: %s", user)
	}

	content = pub.sanitizer.Sanitize(content)
	urlHash := int64(murmur3.Sum64([]byte(contentUrl)))

	var existing *dal.Note
	if existing, err = pub.repo.GetNoteByUrlHash(acct.Id, urlHash, contentUrl); err != nil {
		return nil, false, err
	}

	if existing == nil {
		return pub.createNote(acct, contentUrl, urlHash, content)
	}
	if existing.Content == content {
		return existing, false, nil
	}
	note, err = pub.updateNote(acct, existing, content)
	return note, false, err
}

func (pub *publisher) createNote(acct *dal.Account, contentUrl string, urlHash int64,
	content string) (*dal.Note, bool, error) {

	user := acct.Handle
	idVal := pub.repo.GetNextId()
	now := time.Now().UTC()
	note := dal.Note{
		AccountId:   acct.Id,
		UrlHash:     urlHash,
		ContentUrl:  contentUrl,
		ObjectId:    pub.idb.UserStatus(user, idVal),
		Content:     content,
		PublishedAt: now,
		UpdatedAt:   now,
	}
	if err := pub.repo.AddNote(&note); err != nil {
		return nil, false, err
	}

	act := pub.makeCreateActivity(user, &note)
	act.Context = apubContext[0]
	if err := pub.recordAndDeliver(user, act); err != nil {
		return nil, false, err
	}

	pub.metrics.NotePublished()
	pub.logger.Infof("Published note %s by %s", note.ObjectId, user)
	return &note, true, nil
}

func (pub *publisher) updateNote(acct *dal.Account, note *dal.Note, content string) (*dal.Note, error) {

	user := acct.Handle
	now := time.Now().UTC()
	if err := pub.repo.UpdateNoteContent(note.Id, content, now); err != nil {
		return nil, err
	}
	note.Content = content
	note.UpdatedAt = now

	to := []string{shared.ActivityPublic}
	cc := []string{pub.idb.UserFollowers(user)}
	act := &dto.ActivityOut{
		Context: apubContext[0],
		Id:      note.ObjectId + "/activity/" + fmt.Sprint(now.Unix()),
		Type:    "Update",
		Actor:   pub.idb.UserUrl(user),
		To:      &to,
		Cc:      &cc,
		Object:  pub.makeNoteDto(user, note),
	}
	if err := pub.recordAndDeliver(user, act); err != nil {
		return nil, err
	}

	pub.logger.Infof("Updated note %s by %s", note.ObjectId, user)
	return note, nil
}

// DeleteNote removes the note behind contentUrl and federates a Delete with
// a Tombstone object.
func (pub *publisher) DeleteNote(user, contentUrl string) (found bool, err error) {

	var acct *dal.Account
	if acct, err = pub.repo.GetAccount(user); err != nil {
		return false, err
	}
	if acct == nil {
		return false, fmt.Errorf("no such account: %s", user)
	}

	urlHash := int64(murmur3.Sum64([]byte(contentUrl)))
	var note *dal.Note
	if note, err = pub.repo.GetNoteByUrlHash(acct.Id, urlHash, contentUrl); err != nil {
		return false, err
	}
	if note == nil {
		return false, nil
	}

	if err = pub.repo.DeleteNote(note.Id); err != nil {
		return false, err
	}

	to := []string{shared.ActivityPublic}
	act := &dto.ActivityOut{
		Context: apubContext[0],
		Id:      note.ObjectId + "/delete",
		Type:    "Delete",
		Actor:   pub.idb.UserUrl(user),
		To:      &to,
		Object:  dto.Tombstone{Id: note.ObjectId, Type: "Tombstone"},
	}
	if err = pub.recordAndDeliver(user, act); err != nil {
		return false, err
	}

	pub.logger.Infof("Deleted note %s by %s", note.ObjectId, user)
	return true, nil
}

func (pub *publisher) recordAndDeliver(user string, act *dto.ActivityOut) error {

	_, err := pub.repo.MarkActivityReceived(&dal.ActivityInfo{
		ActivityId: act.Id,
		Type:       act.Type,
		ActorUrl:   act.Actor,
		Direction:  "out",
		Status:     dal.ActivityApplied,
		HandledAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return pub.dispatcher.Deliver(user, act)
}

func (pub *publisher) makeNoteDto(user string, note *dal.Note) *dto.Note {

	res := dto.Note{
		Id:           note.ObjectId,
		Type:         "Note",
		Published:    note.PublishedAt.UTC().Format(time.RFC3339),
		Summary:      nil,
		AttributedTo: pub.idb.UserUrl(user),
		InReplyTo:    nil,
		To:           []string{shared.ActivityPublic},
		Cc:           []string{pub.idb.UserFollowers(user)},
		Content:      note.Content,
	}
	if note.UpdatedAt.After(note.PublishedAt) {
		updated := note.UpdatedAt.UTC().Format(time.RFC3339)
		res.Updated = &updated
	}
	return &res
}

func (pub *publisher) makeCreateActivity(user string, note *dal.Note) *dto.ActivityOut {
	noteDto := pub.makeNoteDto(user, note)
	to := noteDto.To
	cc := noteDto.Cc
	return &dto.ActivityOut{
		Id:     note.ObjectId + "/activity",
		Type:   "Create",
		Actor:  pub.idb.UserUrl(user),
		To:     &to,
		Cc:     &cc,
		Object: noteDto,
	}
}
