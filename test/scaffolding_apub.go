package test

import (
	"fmt"
	"sync"
	"time"

	"fedpub/dal"
)

const localHost = "fedpub.test"
const localName = "alice"
const callerHost = "stardust.community"
const callerName = "pixie"

var muId sync.Mutex
var id int64 = time.Now().UnixNano()

func getNextId() uint64 {
	var res int64
	muId.Lock()
	res = id
	id += 1
	muId.Unlock()
	return uint64(res)
}

func makeCallerActor(host, name string) *dal.RemoteActor {
	return &dal.RemoteActor{
		Id:          1,
		UserUrl:     fmt.Sprintf("https://%s/users/%s", host, name),
		Handle:      name,
		Host:        host,
		Inbox:       fmt.Sprintf("https://%s/users/%s/inbox", host, name),
		SharedInbox: fmt.Sprintf("https://%s/inbox", host),
		PubKey:      "",
		Name:        name,
		RefreshedAt: time.Now().UTC(),
	}
}

func makeFollow(actor *dal.RemoteActor, objectUrl string) (activityId string, body []byte) {
	activityId = fmt.Sprintf("https://%s/act/%d", actor.Host, getNextId())
	json := fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "%s",
		"type": "Follow",
		"actor": "%s",
		"object": "%s"
	}`, activityId, actor.UserUrl, objectUrl)
	return activityId, []byte(json)
}

func makeLike(actor *dal.RemoteActor, objectUrl string) (activityId string, body []byte) {
	activityId = fmt.Sprintf("https://%s/act/%d", actor.Host, getNextId())
	json := fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "%s",
		"type": "Like",
		"actor": "%s",
		"object": "%s"
	}`, activityId, actor.UserUrl, objectUrl)
	return activityId, []byte(json)
}

func makeUndoFollow(actor *dal.RemoteActor, followId, objectUrl string) (activityId string, body []byte) {
	activityId = fmt.Sprintf("https://%s/act/%d", actor.Host, getNextId())
	json := fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "%s",
		"type": "Undo",
		"actor": "%s",
		"object": {
			"id": "%s",
			"type": "Follow",
			"actor": "%s",
			"object": "%s"
		}
	}`, activityId, actor.UserUrl, followId, actor.UserUrl, objectUrl)
	return activityId, []byte(json)
}

func makeCreateNote(actor *dal.RemoteActor, objectId, content string, to, cc string) (activityId string, body []byte) {
	activityId = fmt.Sprintf("https://%s/act/%d", actor.Host, getNextId())
	json := fmt.Sprintf(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "%s",
		"type": "Create",
		"actor": "%s",
		"to": "%s",
		"cc": "%s",
		"object": {
			"id": "%s",
			"type": "Note",
			"attributedTo": "%s",
			"published": "%s",
			"content": "%s"
		}
	}`, activityId, actor.UserUrl, to, cc, objectId, actor.UserUrl,
		time.Now().UTC().Format(time.RFC3339), content)
	return activityId, []byte(json)
}
