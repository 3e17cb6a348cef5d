package logic

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"fedpub/dal"
	"fedpub/dto"
	"fedpub/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_inbox.go -package mocks fedpub/logic IInbox

type IInbox interface {
	// HandleActivity applies one verified inbound activity. receivingUser is
	// empty when the activity arrived through the shared inbox. A non-empty
	// reqProblem means the request itself was bad and deserves a 4xx;
	// processing rejections are recorded and the caller returns 2xx.
	HandleActivity(receivingUser string, sender *dal.RemoteActor, actBase dto.ActivityInBase,
		bodyBytes []byte) (reqProblem string, err error)
}

type inbox struct {
	cfg             *shared.Config
	logger          shared.ILogger
	idb             shared.IdBuilder
	repo            dal.IRepo
	metrics         IMetrics
	dispatcher      IDispatcher
	sanitizer       *bluemonday.Policy
	reUserUrlParser *regexp.Regexp
}

func NewInbox(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	metrics IMetrics,
	dispatcher IDispatcher,
) IInbox {
	reUserUrlParser := regexp.MustCompile("^https://" + cfg.Host + "/u/([^/]+)/?$")
	return &inbox{cfg, logger, shared.IdBuilder{Host: cfg.Host}, repo, metrics, dispatcher,
		bluemonday.UGCPolicy(), reUserUrlParser}
}

func (ib *inbox) HandleActivity(
	receivingUser string,
	sender *dal.RemoteActor,
	actBase dto.ActivityInBase,
	bodyBytes []byte) (reqProblem string, err error) {

	reqProblem = ""
	err = nil

	if actBase.Id == "" {
		reqProblem = "Activity has no id"
		return
	}
	if actBase.Actor != sender.UserUrl {
		reqProblem = fmt.Sprintf("Activity actor %s does not match signer %s",
			actBase.Actor, sender.UserUrl)
		return
	}

	ib.metrics.ActivityReceived(actBase.Type)

	// The unique activity ID makes redelivery a no-op
	var alreadyHandled bool
	alreadyHandled, err = ib.repo.MarkActivityReceived(&dal.ActivityInfo{
		ActivityId: actBase.Id,
		Type:       actBase.Type,
		ActorUrl:   actBase.Actor,
		Direction:  "in",
		Status:     dal.ActivityReceived,
		HandledAt:  time.Now().UTC(),
	})
	if err != nil {
		return
	}
	if alreadyHandled {
		ib.logger.Infof("Activity has already been handled: %s", actBase.Id)
		return
	}

	var procErr *ProcessingError
	switch actBase.Type {
	case "Follow":
		procErr, reqProblem, err = ib.handleFollow(receivingUser, sender, bodyBytes)
	case "Undo":
		procErr, reqProblem, err = ib.handleUndo(sender, bodyBytes)
	case "Like":
		procErr, err = ib.handleInteraction(sender, actBase, dal.InteractionLike)
	case "Announce":
		procErr, err = ib.handleInteraction(sender, actBase, dal.InteractionAnnounce)
	case "Create", "Update":
		procErr, reqProblem, err = ib.handleCreate(sender, actBase)
	case "Delete":
		procErr = ib.handleDelete(sender, actBase)
	default:
		procErr = &ProcessingError{ProcUnsupportedType,
			fmt.Sprintf("unsupported activity type: %s", actBase.Type)}
	}
	if err != nil || reqProblem != "" {
		return
	}

	if procErr != nil {
		ib.logger.Infof("Rejecting %s activity %s: %v", actBase.Type, actBase.Id, procErr)
		ib.metrics.ActivityRejected(actBase.Type)
		err = ib.repo.SetActivityStatus(actBase.Id, dal.ActivityRejected, procErr.Error())
	} else {
		err = ib.repo.SetActivityStatus(actBase.Id, dal.ActivityApplied, "")
	}
	return
}

func (ib *inbox) handleFollow(
	receivingUser string,
	sender *dal.RemoteActor,
	bodyBytes []byte) (procErr *ProcessingError, reqProblem string, err error) {

	var actFollow dto.ActivityIn[string]
	if jsonErr := json.Unmarshal(bodyBytes, &actFollow); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Follow activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}

	// The object names who is being followed; that also routes activities
	// arriving through the shared inbox
	groups := ib.reUserUrlParser.FindStringSubmatch(actFollow.Object)
	if groups == nil {
		procErr = &ProcessingError{ProcTargetNotLocal,
			fmt.Sprintf("follow object is not a local user: %s", actFollow.Object)}
		return
	}
	objectUser := groups[1]
	if receivingUser != "" && receivingUser != objectUser {
		procErr = &ProcessingError{ProcTargetNotLocal,
			fmt.Sprintf("follow object %s does not match inbox owner %s", objectUser, receivingUser)}
		return
	}

	ib.logger.Infof("Handling Follow of '%s' by %s", objectUser, sender.UserUrl)

	var account *dal.Account
	if account, err = ib.repo.GetAccount(objectUser); err != nil {
		return
	}
	if account == nil {
		procErr = &ProcessingError{ProcTargetNotLocal, fmt.Sprintf("no such user: %s", objectUser)}
		return
	}

	flwr := dal.FollowerInfo{
		RequestId:   actFollow.Id,
		Status:      dal.FollowPending,
		UserUrl:     sender.UserUrl,
		Handle:      sender.Handle,
		Host:        sender.Host,
		UserInbox:   sender.Inbox,
		SharedInbox: sender.SharedInbox,
	}
	if err = ib.repo.AddFollower(objectUser, &flwr); err != nil {
		return
	}

	err = ib.acceptFollow(objectUser, sender, bodyBytes)
	return
}

// acceptFollow queues an Accept echoing the original Follow, then flips the
// follower to accepted.
func (ib *inbox) acceptFollow(user string, sender *dal.RemoteActor, followBody []byte) error {

	userUrl := ib.idb.UserUrl(user)
	actAccept := dto.ActivityOut{
		Context: "https://www.w3.org/ns/activitystreams",
		Id:      ib.idb.ActivityUrl(uuid.NewString()),
		Type:    "Accept",
		Actor:   userUrl,
		To:      &[]string{sender.UserUrl},
		Object:  json.RawMessage(followBody),
	}

	_, err := ib.repo.MarkActivityReceived(&dal.ActivityInfo{
		ActivityId: actAccept.Id,
		Type:       "Accept",
		ActorUrl:   userUrl,
		Direction:  "out",
		Status:     dal.ActivityApplied,
		HandledAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if err = ib.dispatcher.DeliverToInbox(user, sender.Inbox, &actAccept); err != nil {
		return err
	}
	if err = ib.repo.SetFollowerStatus(user, sender.UserUrl, dal.FollowAccepted); err != nil {
		return err
	}

	if count, cntErr := ib.repo.GetFollowerCount(user, true); cntErr == nil {
		ib.metrics.TotalFollowers(int(count))
	}
	return nil
}

func (ib *inbox) handleUndo(
	sender *dal.RemoteActor,
	bodyBytes []byte) (procErr *ProcessingError, reqProblem string, err error) {

	var actUndo dto.ActivityIn[dto.ActivityInBase]
	if jsonErr := json.Unmarshal(bodyBytes, &actUndo); jsonErr != nil {
		ib.logger.Info("Invalid JSON in Undo activity body")
		reqProblem = fmt.Sprintf("Invalid JSON: %v", jsonErr)
		return
	}

	inner := actUndo.Object
	if inner.Id == "" {
		procErr = &ProcessingError{ProcMalformedActivity, "undo object has no id"}
		return
	}
	if inner.Actor != "" && inner.Actor != sender.UserUrl {
		procErr = &ProcessingError{ProcMalformedActivity,
			fmt.Sprintf("cannot undo activity of different actor: %s", inner.Actor)}
		return
	}

	ib.logger.Infof("Handling Undo %s by %s", inner.Type, sender.UserUrl)

	var found bool
	switch inner.Type {
	case "Follow":
		found, err = ib.repo.UndoFollowerByRequestId(inner.Id)
	case "Like", "Announce":
		found, err = ib.repo.UndoInteractionByActivityId(inner.Id)
	default:
		procErr = &ProcessingError{ProcUnsupportedType,
			fmt.Sprintf("unsupported undo object type: %s", inner.Type)}
		return
	}
	if err != nil {
		return
	}
	// Undo of something we never saw is a no-op
	if !found {
		ib.logger.Infof("Undo target not found, ignoring: %s", inner.Id)
	}
	return
}

func (ib *inbox) handleInteraction(
	sender *dal.RemoteActor,
	actBase dto.ActivityInBase,
	kind string) (procErr *ProcessingError, err error) {

	objectId := objectIdOf(actBase.Object)
	if objectId == "" {
		procErr = &ProcessingError{ProcMalformedActivity, "activity object has no usable id"}
		return
	}

	var note *dal.Note
	if note, err = ib.repo.GetNoteByObjectId(objectId); err != nil {
		return
	}
	if note == nil {
		procErr = &ProcessingError{ProcTargetNotLocal,
			fmt.Sprintf("object is not a local note: %s", objectId)}
		return
	}

	ib.logger.Infof("Handling %s of %s by %s", actBase.Type, objectId, sender.UserUrl)

	var isNew bool
	isNew, err = ib.repo.AddInteractionIfNew(&dal.Interaction{
		NoteId:     note.Id,
		ActorUrl:   sender.UserUrl,
		Kind:       kind,
		ActivityId: actBase.Id,
	})
	if err != nil {
		return
	}
	if !isNew {
		ib.logger.Infof("Duplicate %s on note %d by %s, ignoring", kind, note.Id, sender.UserUrl)
	}
	return
}

func (ib *inbox) handleCreate(
	sender *dal.RemoteActor,
	actBase dto.ActivityInBase) (procErr *ProcessingError, reqProblem string, err error) {

	obj, ok := actBase.Object.(map[string]interface{})
	if !ok {
		reqProblem = "Create activity object must be an embedded object"
		return
	}
	objectId, _ := obj["id"].(string)
	if objectId == "" {
		procErr = &ProcessingError{ProcMalformedActivity, "created object has no id"}
		return
	}
	objectType, _ := obj["type"].(string)
	content, _ := obj["content"].(string)
	inReplyTo, _ := obj["inReplyTo"].(string)

	publishedAt := time.Now().UTC()
	if pubStr, ok := obj["published"].(string); ok {
		if parsed, parseErr := time.Parse(time.RFC3339, pubStr); parseErr == nil {
			publishedAt = parsed.UTC()
		}
	}

	ib.logger.Infof("Handling %s %s from %s", actBase.Type, objectType, sender.UserUrl)

	// Unknown object types are kept too; Raw preserves what we don't model
	rawJson, _ := json.Marshal(obj)
	var isNew bool
	isNew, err = ib.repo.AddRemoteNoteIfNew(&dal.RemoteNote{
		ObjectId:    objectId,
		ActorUrl:    sender.UserUrl,
		ObjectType:  objectType,
		Content:     ib.sanitizer.Sanitize(content),
		InReplyTo:   inReplyTo,
		Raw:         string(rawJson),
		PublishedAt: publishedAt,
	})
	if err != nil {
		return
	}
	if !isNew {
		ib.logger.Infof("Object already stored: %s", objectId)
	}
	return
}

func (ib *inbox) handleDelete(sender *dal.RemoteActor, actBase dto.ActivityInBase) *ProcessingError {

	objectId := objectIdOf(actBase.Object)
	if objectId == "" {
		return &ProcessingError{ProcMalformedActivity, "delete object has no usable id"}
	}

	// Actors deleting themselves is routine fediverse noise
	if objectId == sender.UserUrl {
		ib.logger.Infof("Actor deleted itself: %s", sender.UserUrl)
		return nil
	}

	found, err := ib.repo.DeleteRemoteNote(objectId, sender.UserUrl)
	if err != nil {
		ib.logger.Errorf("Failed to delete remote note %s: %v", objectId, err)
		return nil
	}
	if found {
		ib.logger.Infof("Deleted remote note %s on request of %s", objectId, sender.UserUrl)
	}
	return nil
}

// objectIdOf digs the object's ID out whether it's a bare string or an
// embedded object.
func objectIdOf(object any) string {
	if str, ok := object.(string); ok {
		return str
	}
	if obj, ok := object.(map[string]interface{}); ok {
		if id, ok := obj["id"].(string); ok {
			return id
		}
	}
	return ""
}
