package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fedpub/dal"
	"fedpub/dto"
	"fedpub/logic"
	"fedpub/shared"
)

// Groups together the handlers of the federation surface.
type apubHandlerGroup struct {
	cfg        *shared.Config
	logger     shared.ILogger
	metrics    logic.IMetrics
	sigChecker logic.IHttpSigChecker
	publisher  logic.IPublisher
	inbox      logic.IInbox
}

func NewApubHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	sigChecker logic.IHttpSigChecker,
	publisher logic.IPublisher,
	ibox logic.IInbox,
) IHandlerGroup {
	res := apubHandlerGroup{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
		sigChecker: sigChecker,
		publisher:  publisher,
		inbox:      ibox,
	}
	return &res
}

func (hg *apubHandlerGroup) Prefix() string {
	return ""
}

func (hg *apubHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/.well-known/webfinger", func(w http.ResponseWriter, r *http.Request) { hg.getWebfinger(w, r) }},
		{"GET", "/u/{user}", func(w http.ResponseWriter, r *http.Request) { hg.getUser(w, r) }},
		{"GET", "/u/{user}/outbox", func(w http.ResponseWriter, r *http.Request) { hg.getUserOutbox(w, r) }},
		{"GET", "/u/{user}/followers", func(w http.ResponseWriter, r *http.Request) { hg.getUserFollowers(w, r) }},
		{"GET", "/u/{user}/following", func(w http.ResponseWriter, r *http.Request) { hg.getUserFollowing(w, r) }},
		{"GET", "/u/{user}/status/{id}", func(w http.ResponseWriter, r *http.Request) { hg.getUserStatus(w, r) }},
		{"POST", "/u/{user}/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
		{"POST", "/inbox", func(w http.ResponseWriter, r *http.Request) { hg.postInbox(w, r) }},
	}
}

func (hg *apubHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *apubHandlerGroup) getWebfinger(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling webfinger GET: %s", r.URL.RawQuery)
	obs := hg.metrics.StartApubRequestIn("webfinger")
	defer obs.Finish()

	resourceParam := r.URL.Query().Get("resource")
	if resourceParam == "" {
		hg.logger.Info("Webfinger: missing 'resource' param")
		writeErrorResponse(w, "Missing 'resource' param", http.StatusBadRequest)
		return
	}

	resp, err := hg.publisher.GetWebfinger(resourceParam)
	if err != nil {
		hg.logger.Errorf("Webfinger: error retrieving resource '%s': %v", resourceParam, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if resp == nil {
		hg.logger.Infof("Webfinger: No such resource; 'resource' param is '%s'", resourceParam)
		writeErrorResponse(w, "No such resource", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/jrd+json")
	respJson, _ := json.Marshal(resp)
	fmt.Fprintln(w, string(respJson))
}

func (hg *apubHandlerGroup) getUser(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user")
	defer obs.Finish()
	userName := mux.Vars(r)["user"]

	userInfo, err := hg.publisher.GetUserInfo(userName)
	if err != nil {
		hg.logger.Errorf("Error retrieving user '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if userInfo == nil {
		hg.logger.Infof("Info requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, true, userInfo)
}

func (hg *apubHandlerGroup) getUserStatus(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user status GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/status")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	statusIdStr := mux.Vars(r)["id"]

	statusId, err := strconv.ParseUint(statusIdStr, 10, 64)
	if err != nil {
		hg.logger.Infof("Invalid status ID: %s/%s", userName, statusIdStr)
		writeErrorResponse(w, "User or status not found", http.StatusNotFound)
		return
	}

	var note *dto.Note
	if note, err = hg.publisher.GetStatus(userName, statusId); err != nil {
		hg.logger.Errorf("Error retrieving status %s/%s: %v", userName, statusIdStr, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if note == nil {
		hg.logger.Infof("User status not found: %s/%s", userName, statusIdStr)
		writeErrorResponse(w, "User or status not found", http.StatusNotFound)
		return
	}

	writeJsonResponse(hg.logger, w, true, note)
}

func (hg *apubHandlerGroup) getUserOutbox(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user outbox GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/outbox")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	if r.URL.Query().Get("page") != "" {
		page, err := hg.publisher.GetOutboxPage(userName, getMaxIdParam(r))
		hg.writeCollectionResp(w, userName, page, err)
		return
	}
	summary, err := hg.publisher.GetOutboxSummary(userName)
	hg.writeCollectionResp(w, userName, summary, err)
}

func (hg *apubHandlerGroup) getUserFollowers(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user followers GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/followers")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	if r.URL.Query().Get("page") != "" {
		page, err := hg.publisher.GetFollowersPage(userName, getMaxIdParam(r))
		hg.writeCollectionResp(w, userName, page, err)
		return
	}
	summary, err := hg.publisher.GetFollowersSummary(userName)
	hg.writeCollectionResp(w, userName, summary, err)
}

func (hg *apubHandlerGroup) getUserFollowing(w http.ResponseWriter, r *http.Request) {

	hg.logger.Infof("Handling user following GET: %s", r.URL.Path)
	obs := hg.metrics.StartApubRequestIn("user/following")
	defer obs.Finish()

	userName := mux.Vars(r)["user"]
	summary, err := hg.publisher.GetFollowingSummary(userName)
	hg.writeCollectionResp(w, userName, summary, err)
}

func getMaxIdParam(r *http.Request) int {
	maxId, err := strconv.Atoi(r.URL.Query().Get("max_id"))
	if err != nil || maxId < 0 {
		return 0
	}
	return maxId
}

// writeCollectionResp deals with the shared outcomes of collection
// retrievals. resp must be a pointer; a typed nil means no such user.
func (hg *apubHandlerGroup) writeCollectionResp(w http.ResponseWriter, userName string, resp any, err error) {
	if err != nil {
		hg.logger.Errorf("Error retrieving collection for '%s': %v", userName, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	isNil := false
	switch val := resp.(type) {
	case *dto.OrderedListSummary:
		isNil = val == nil
	case *dto.OrderedCollectionPage:
		isNil = val == nil
	}
	if isNil {
		hg.logger.Infof("Collection requested for unknown user: '%s'", userName)
		writeErrorResponse(w, "No such user", http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, true, resp)
}

func (hg *apubHandlerGroup) postInbox(w http.ResponseWriter, r *http.Request) {

	var err error
	hg.logger.Infof("Handling inbox POST: %s", r.URL.Path)
	userName := mux.Vars(r)["user"]

	if userName == "" {
		obs := hg.metrics.StartApubRequestIn("inbox")
		defer obs.Finish()
	} else {
		obs := hg.metrics.StartApubRequestIn("user/inbox")
		defer obs.Finish()
	}

	bodyBytes := readBody(hg.logger, w, r)
	if bodyBytes == nil {
		return
	}
	if len(bodyBytes) == 0 {
		hg.logger.Info("Empty request body")
		writeErrorResponse(w, "Request body must not be empty", http.StatusBadRequest)
		return
	}

	// A user inbox must belong to an existing user
	if userName != "" {
		var userInfo *dto.UserInfo
		if userInfo, err = hg.publisher.GetUserInfo(userName); err != nil {
			hg.logger.Errorf("Error retrieving user '%s': %v", userName, err)
			writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
			return
		}
		if userInfo == nil {
			hg.logger.Infof("Inbox POST for unknown user: '%s'", userName)
			writeErrorResponse(w, "No such user", http.StatusNotFound)
			return
		}
	}

	// First, parse a rudimentary version of the activity to find out its type
	var act dto.ActivityInBase
	if err = json.Unmarshal(bodyBytes, &act); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v: %s", err, string(bodyBytes))
		writeErrorResponse(w, "Request body is not valid JSON", http.StatusBadRequest)
		return
	}

	// Verify signature
	var sender *dal.RemoteActor
	var sigProblem *logic.VerificationError
	sender, sigProblem, err = hg.sigChecker.Check(r, bodyBytes)

	if err != nil {
		hg.logger.Errorf("Unexpected error trying to verify signature: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	if sigProblem != nil {
		// Deletes of gone actors cannot be verified; swallow them so peers
		// stop re-sending
		if act.Type == "Delete" {
			hg.logger.Infof("Ignoring Delete request with unverifiable actor signature")
			writeJsonResponse(hg.logger, w, false, "OK")
		} else {
			hg.logger.Warnf("Incorrectly signed inbox POST request: %v", sigProblem)
			msg := fmt.Sprintf("Invalid HTTP signature: %s", sigProblem.Detail)
			writeErrorResponse(w, msg, http.StatusUnauthorized)
		}
		return
	}

	var reqProblem string
	reqProblem, err = hg.inbox.HandleActivity(userName, sender, act, bodyBytes)

	if err != nil {
		hg.logger.Errorf("Error handling inbox activity: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}

	if reqProblem != "" {
		hg.logger.Infof("Invalid '%s' request: %s", act.Type, reqProblem)
		msg := fmt.Sprintf("Bad request: %s", reqProblem)
		writeErrorResponse(w, msg, http.StatusBadRequest)
		return
	}

	writeJsonResponse(hg.logger, w, false, "OK")
}
