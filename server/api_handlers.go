package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"fedpub/dto"
	"fedpub/logic"
	"fedpub/shared"
)

type apiHandlerGroup struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   logic.IMetrics
	publisher logic.IPublisher
	resolver  logic.IResolver
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	publisher logic.IPublisher,
	resolver logic.IResolver,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		publisher: publisher,
		resolver:  resolver,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/actors", func(w http.ResponseWriter, r *http.Request) { hg.postActors(w, r) }},
		{"GET", "/actors/lookup", func(w http.ResponseWriter, r *http.Request) { hg.getActorLookup(w, r) }},
		{"POST", "/notes", func(w http.ResponseWriter, r *http.Request) { hg.postNotes(w, r) }},
		{"DELETE", "/notes", func(w http.ResponseWriter, r *http.Request) { hg.deleteNotes(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) postActors(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/actors: Request received")
	obs := hg.metrics.StartApiRequestIn("actors")
	defer obs.Finish()

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var newActor dto.NewActor
	if err := json.Unmarshal(bodyBytes, &newActor); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	acct, isNew, err := hg.publisher.CreateActor(newActor.Handle, newActor.Name, newActor.Summary)
	if err != nil {
		if valErr := shared.ValidateHandle(newActor.Handle); valErr != nil {
			hg.logger.Infof("Invalid handle '%s': %v", newActor.Handle, valErr)
			writeErrorResponse(w, valErr.Error(), http.StatusBadRequest)
			return
		}
		hg.logger.Errorf("Failed to create actor '%s': %v", newActor.Handle, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.NewActorResp{
		Handle:  acct.Handle,
		UserUrl: acct.UserUrl,
		IsNew:   isNew,
	}
	writeJsonResponse(hg.logger, w, false, resp)
}

func (hg *apiHandlerGroup) getActorLookup(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("GET /api/actors/lookup: Request received")
	obs := hg.metrics.StartApiRequestIn("actors/lookup")
	defer obs.Finish()

	acct := strings.TrimPrefix(r.URL.Query().Get("acct"), "@")
	atIx := strings.IndexByte(acct, '@')
	if atIx < 1 || atIx == len(acct)-1 {
		writeErrorResponse(w, "'acct' param must be of the form user@host", http.StatusBadRequest)
		return
	}
	handle, host := acct[:atIx], acct[atIx+1:]

	actor, err := hg.resolver.ResolveHandle(handle, host)
	if err != nil {
		var resErr *logic.ResolutionError
		if errors.As(err, &resErr) {
			hg.logger.Infof("Failed to resolve '%s': %v", acct, resErr)
			if resErr.Kind == logic.ResolutionNotFound {
				writeErrorResponse(w, "No such actor", http.StatusNotFound)
			} else {
				writeErrorResponse(w, "Could not resolve actor", http.StatusBadGateway)
			}
			return
		}
		hg.logger.Errorf("Error resolving '%s': %v", acct, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.LookupActorResp{
		Moniker:     shared.MakeFullMoniker(actor.Host, actor.Handle),
		UserUrl:     actor.UserUrl,
		Handle:      actor.Handle,
		Host:        actor.Host,
		Name:        actor.Name,
		Inbox:       actor.Inbox,
		SharedInbox: actor.SharedInbox,
	}
	writeJsonResponse(hg.logger, w, false, resp)
}

func (hg *apiHandlerGroup) postNotes(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("POST /api/notes: Request received")
	obs := hg.metrics.StartApiRequestIn("notes")
	defer obs.Finish()

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var publish dto.PublishNote
	if err := json.Unmarshal(bodyBytes, &publish); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if publish.Actor == "" || publish.ContentUrl == "" || publish.Content == "" {
		writeErrorResponse(w, "actor, content and content_url must all be provided", http.StatusBadRequest)
		return
	}

	note, isNew, err := hg.publisher.UpsertNote(publish.Actor, publish.ContentUrl, publish.Content)
	if err != nil {
		hg.logger.Errorf("Failed to publish note for '%s': %v", publish.Actor, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	resp := dto.PublishNoteResp{
		ObjectId:  note.ObjectId,
		IsNew:     isNew,
		Published: note.PublishedAt.UTC().Format(time.RFC3339),
	}
	writeJsonResponse(hg.logger, w, false, resp)
}

func (hg *apiHandlerGroup) deleteNotes(w http.ResponseWriter, r *http.Request) {

	hg.logger.Info("DELETE /api/notes: Request received")
	obs := hg.metrics.StartApiRequestIn("notes")
	defer obs.Finish()

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	var del dto.DeleteNote
	if err := json.Unmarshal(bodyBytes, &del); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	found, err := hg.publisher.DeleteNote(del.Actor, del.ContentUrl)
	if err != nil {
		hg.logger.Errorf("Failed to delete note for '%s': %v", del.Actor, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if !found {
		writeErrorResponse(w, "No note with this content_url", http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, false, "OK")
}
