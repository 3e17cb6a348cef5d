package dal

import (
	"time"
)

// Follower approve statuses
const (
	FollowPending  = 0
	FollowAccepted = 1
	FollowUndone   = -1
)

// Activity processing statuses
const (
	ActivityReceived = "received"
	ActivityApplied  = "applied"
	ActivityRejected = "rejected"
)

// Delivery task statuses
const (
	DeliveryPending = 0
	DeliveryClaimed = 1
	DeliveryFailed  = -1
)

// Interaction kinds
const (
	InteractionLike     = "like"
	InteractionAnnounce = "announce"
)

type Account struct {
	Id        int
	CreatedAt time.Time
	UserUrl   string // https://fedpub.example.com/u/alice
	Handle    string // alice
	Name      string
	Summary   string
	PubKey    string
}

type RemoteActor struct {
	Id          int
	UserUrl     string // https://genart.social/users/twilliability
	Handle      string // twilliability
	Host        string // genart.social
	Inbox       string // https://genart.social/users/twilliability/inbox
	SharedInbox string // https://genart.social/inbox; empty if the peer has none
	PubKey      string // PEM
	Name        string
	Summary     string
	RefreshedAt time.Time
}

type FollowerInfo struct {
	Id          int
	RequestId   string // ID of the follow request activity; needed for accept and undo
	Status      int    // FollowPending / FollowAccepted / FollowUndone
	UserUrl     string
	Handle      string
	Host        string
	UserInbox   string
	SharedInbox string
}

type Note struct {
	Id          int
	AccountId   int
	UrlHash     int64  // murmur3 of ContentUrl; upsert key together with AccountId
	ContentUrl  string // where the content lives on the local site
	ObjectId    string // stable ActivityPub object URI
	Content     string
	PublishedAt time.Time
	UpdatedAt   time.Time
}

// RemoteNote holds an inbound Create's object. Objects of types we don't
// model are kept via Raw only.
type RemoteNote struct {
	Id          int
	ObjectId    string
	ActorUrl    string
	ObjectType  string
	Content     string // sanitized
	InReplyTo   string
	Raw         string
	PublishedAt time.Time
}

type Interaction struct {
	Id         int
	NoteId     int
	ActorUrl   string
	Kind       string // InteractionLike / InteractionAnnounce
	ActivityId string // URI of the Like/Announce activity; undo key
	Undone     bool
}

type ActivityInfo struct {
	ActivityId string // globally unique URI; dedup key
	Type       string
	ActorUrl   string
	Direction  string // "in" or "out"
	Status     string
	Reason     string
	HandledAt  time.Time
}

type DeliveryTask struct {
	Id            int
	SendingUser   string
	ToInbox       string
	ActivityId    string
	Payload       string // serialized activity JSON
	Attempts      int
	NextAttemptAt time.Time
	Status        int
}
