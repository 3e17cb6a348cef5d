package dto

// Shapes of the service API under /api. Not part of the federation surface.

type NewActor struct {
	Handle  string `json:"handle"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

type NewActorResp struct {
	Handle  string `json:"handle"`
	UserUrl string `json:"user_url"`
	IsNew   bool   `json:"is_new"`
}

type PublishNote struct {
	Actor      string `json:"actor"`
	Content    string `json:"content"`
	ContentUrl string `json:"content_url"`
}

type PublishNoteResp struct {
	ObjectId  string `json:"object_id"`
	IsNew     bool   `json:"is_new"`
	Published string `json:"published"`
}

type DeleteNote struct {
	Actor      string `json:"actor"`
	ContentUrl string `json:"content_url"`
}

type LookupActorResp struct {
	Moniker     string `json:"moniker"`
	UserUrl     string `json:"user_url"`
	Handle      string `json:"handle"`
	Host        string `json:"host"`
	Name        string `json:"name,omitempty"`
	Inbox       string `json:"inbox"`
	SharedInbox string `json:"shared_inbox,omitempty"`
}
