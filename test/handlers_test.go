package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fedpub/dal"
	"fedpub/dto"
	"fedpub/logic"
	"fedpub/server"
	"fedpub/shared"
	"fedpub/test/mocks"
)

const testApiKey = "test-api-key"

type handlerHarness struct {
	cfg            *shared.Config
	mockLogger     *mocks.MockILogger
	mockMetrics    *mocks.MockIMetrics
	mockSigChecker *mocks.MockIHttpSigChecker
	mockPublisher  *mocks.MockIPublisher
	mockInbox      *mocks.MockIInbox
	mockResolver   *mocks.MockIResolver
}

func setupHandlerTest(t *testing.T) (*gomock.Controller, *handlerHarness, *httptest.Server) {
	ctrl := gomock.NewController(t)
	h := handlerHarness{
		cfg: &shared.Config{
			Host:    localHost,
			Secrets: shared.Secrets{ApiKeys: []string{testApiKey}},
		},
		mockLogger:     mocks.NewMockILogger(ctrl),
		mockMetrics:    mocks.NewMockIMetrics(ctrl),
		mockSigChecker: mocks.NewMockIHttpSigChecker(ctrl),
		mockPublisher:  mocks.NewMockIPublisher(ctrl),
		mockInbox:      mocks.NewMockIInbox(ctrl),
		mockResolver:   mocks.NewMockIResolver(ctrl),
	}
	stubLogger(h.mockLogger)
	stubObservers(ctrl, h.mockMetrics)

	groups := []server.IHandlerGroup{
		server.NewApubHandlerGroup(h.cfg, h.mockLogger, h.mockMetrics, h.mockSigChecker,
			h.mockPublisher, h.mockInbox),
		server.NewApiHandlerGroup(h.cfg, h.mockLogger, h.mockMetrics, h.mockPublisher,
			h.mockResolver),
	}
	ts := httptest.NewServer(server.NewMux(groups))
	return ctrl, &h, ts
}

func Test_Handlers_Webfinger(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	resource := "acct:" + localName + "@" + localHost
	wfResp := &dto.WebfingerResp{Subject: resource}

	// Expectations
	h.mockPublisher.EXPECT().GetWebfinger(resource).Return(wfResp, nil)

	// Play
	resp, err := http.Get(ts.URL + "/.well-known/webfinger?resource=" + resource)

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/jrd+json", resp.Header.Get("Content-Type"))
	var got dto.WebfingerResp
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, resource, got.Subject)
}

func Test_Handlers_Webfinger_MissingResource(t *testing.T) {

	// Set up
	ctrl, _, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	// Play
	resp, err := http.Get(ts.URL + "/.well-known/webfinger")

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_Handlers_GetUser(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	userUrl := "https://" + localHost + "/u/" + localName
	info := &dto.UserInfo{Id: userUrl, Type: "Person", PreferredUserName: localName}

	// Expectations
	h.mockPublisher.EXPECT().GetUserInfo(localName).Return(info, nil)

	// Play
	resp, err := http.Get(ts.URL + "/u/" + localName)

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/activity+json", resp.Header.Get("Content-Type"))
	var got dto.UserInfo
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, userUrl, got.Id)
}

func Test_Handlers_GetUser_NotFound(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	// Expectations
	h.mockPublisher.EXPECT().GetUserInfo("nobody").Return(nil, nil)

	// Play
	resp, err := http.Get(ts.URL + "/u/nobody")

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_Handlers_GetOutbox_PagedAndSummary(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	outboxUrl := "https://" + localHost + "/u/" + localName + "/outbox"
	summary := &dto.OrderedListSummary{Id: outboxUrl, Type: "OrderedCollection", TotalItems: 1}
	page := &dto.OrderedCollectionPage{Id: outboxUrl + "?page=true", Type: "OrderedCollectionPage"}

	// Expectations
	h.mockPublisher.EXPECT().GetOutboxSummary(localName).Return(summary, nil)
	h.mockPublisher.EXPECT().GetOutboxPage(localName, 17).Return(page, nil)

	// Play, check: summary without the page param
	resp, err := http.Get(ts.URL + "/u/" + localName + "/outbox")
	assert.Nil(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Play, check: page with keyset param
	resp, err = http.Get(ts.URL + "/u/" + localName + "/outbox?page=true&max_id=17")
	assert.Nil(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func Test_Handlers_GetStatus_InvalidId(t *testing.T) {

	// Set up
	ctrl, _, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	// Play: a non-numeric status ID is a 404, not a 400
	resp, err := http.Get(ts.URL + "/u/" + localName + "/status/not-a-number")

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_Handlers_PostInbox_Accepted(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	caller := makeCallerActor(callerHost, callerName)
	_, body := makeFollow(caller, "https://"+localHost+"/u/"+localName)

	// Expectations
	h.mockPublisher.EXPECT().GetUserInfo(localName).Return(&dto.UserInfo{Id: "x"}, nil)
	h.mockSigChecker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(caller, nil, nil)
	h.mockInbox.EXPECT().HandleActivity(localName, caller, gomock.Any(), gomock.Any()).
		Return("", nil)

	// Play
	resp, err := http.Post(ts.URL+"/u/"+localName+"/inbox", "application/activity+json",
		bytes.NewReader(body))

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func Test_Handlers_PostInbox_BadSignature(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	caller := makeCallerActor(callerHost, callerName)
	_, body := makeFollow(caller, "https://"+localHost+"/u/"+localName)
	sigProblem := &logic.VerificationError{Kind: logic.VerifInvalidSignature,
		Detail: "incorrect signature"}

	// Expectations
	h.mockPublisher.EXPECT().GetUserInfo(localName).Return(&dto.UserInfo{Id: "x"}, nil)
	h.mockSigChecker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil, sigProblem, nil)

	// Play
	resp, err := http.Post(ts.URL+"/u/"+localName+"/inbox", "application/activity+json",
		bytes.NewReader(body))

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func Test_Handlers_PostInbox_UnverifiableDelete_Swallowed(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	caller := makeCallerActor(callerHost, callerName)
	body := []byte(`{
		"@context": "https://www.w3.org/ns/activitystreams",
		"id": "https://` + callerHost + `/act/self-delete",
		"type": "Delete",
		"actor": "` + caller.UserUrl + `",
		"object": "` + caller.UserUrl + `"
	}`)
	sigProblem := &logic.VerificationError{Kind: logic.VerifActorUnresolvable,
		Detail: "actor is gone"}

	// Expectations: no inbox handling; just a 200 so the peer stops retrying
	h.mockSigChecker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil, sigProblem, nil)

	// Play: the shared inbox skips the user existence check
	resp, err := http.Post(ts.URL+"/inbox", "application/activity+json",
		bytes.NewReader(body))

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func Test_Handlers_PostInbox_ReqProblem(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	caller := makeCallerActor(callerHost, callerName)
	_, body := makeFollow(caller, "https://"+localHost+"/u/"+localName)

	// Expectations
	h.mockSigChecker.EXPECT().Check(gomock.Any(), gomock.Any()).Return(caller, nil, nil)
	h.mockInbox.EXPECT().HandleActivity("", caller, gomock.Any(), gomock.Any()).
		Return("activity actor does not match signer", nil)

	// Play
	resp, err := http.Post(ts.URL+"/inbox", "application/activity+json",
		bytes.NewReader(body))

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_Handlers_PostInbox_InvalidJson(t *testing.T) {

	// Set up
	ctrl, _, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	// Play
	resp, err := http.Post(ts.URL+"/inbox", "application/activity+json",
		bytes.NewReader([]byte("this is not json")))

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_Handlers_Api_RequiresKey(t *testing.T) {

	// Set up
	ctrl, _, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	// Play: no X-API-KEY header
	resp, err := http.Post(ts.URL+"/api/actors", "application/json",
		bytes.NewReader([]byte(`{"handle": "alice"}`)))

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func Test_Handlers_Api_CreateActor(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	userUrl := "https://" + localHost + "/u/" + localName
	acct := &dal.Account{Id: 1, Handle: localName, UserUrl: userUrl}

	// Expectations
	h.mockPublisher.EXPECT().CreateActor(localName, "Alice", "Blog mirror").
		Return(acct, true, nil)

	// Play
	reqBody := []byte(`{"handle": "` + localName + `", "name": "Alice", "summary": "Blog mirror"}`)
	req, _ := http.NewRequest("POST", ts.URL+"/api/actors", bytes.NewReader(reqBody))
	req.Header.Set(apiKeyHeaderName, testApiKey)
	resp, err := http.DefaultClient.Do(req)

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.NewActorResp
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, localName, got.Handle)
	assert.Equal(t, userUrl, got.UserUrl)
	assert.True(t, got.IsNew)
}

func Test_Handlers_Api_PublishNote(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	objectId := "https://" + localHost + "/u/" + localName + "/status/12345"
	note := &dal.Note{Id: 9, ObjectId: objectId, PublishedAt: time.Now().UTC()}

	// Expectations
	h.mockPublisher.EXPECT().UpsertNote(localName, "https://blog.example/posts/first",
		"<p>Hello</p>").Return(note, true, nil)

	// Play
	reqBody := []byte(`{"actor": "` + localName + `",
		"content_url": "https://blog.example/posts/first", "content": "<p>Hello</p>"}`)
	req, _ := http.NewRequest("POST", ts.URL+"/api/notes", bytes.NewReader(reqBody))
	req.Header.Set(apiKeyHeaderName, testApiKey)
	resp, err := http.DefaultClient.Do(req)

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.PublishNoteResp
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, objectId, got.ObjectId)
	assert.True(t, got.IsNew)
}

func Test_Handlers_Api_PublishNote_MissingFields(t *testing.T) {

	// Set up
	ctrl, _, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	// Play
	reqBody := []byte(`{"actor": "` + localName + `"}`)
	req, _ := http.NewRequest("POST", ts.URL+"/api/notes", bytes.NewReader(reqBody))
	req.Header.Set(apiKeyHeaderName, testApiKey)
	resp, err := http.DefaultClient.Do(req)

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_Handlers_Api_LookupActor(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	caller := makeCallerActor(callerHost, callerName)

	// Expectations
	h.mockResolver.EXPECT().ResolveHandle(callerName, callerHost).Return(caller, nil)

	// Play
	req, _ := http.NewRequest("GET",
		ts.URL+"/api/actors/lookup?acct="+callerName+"@"+callerHost, nil)
	req.Header.Set(apiKeyHeaderName, testApiKey)
	resp, err := http.DefaultClient.Do(req)

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.LookupActorResp
	assert.Nil(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "@"+callerName+"@"+callerHost, got.Moniker)
	assert.Equal(t, caller.UserUrl, got.UserUrl)
	assert.Equal(t, caller.Inbox, got.Inbox)
}

func Test_Handlers_Api_LookupActor_NotFound(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	// Expectations
	h.mockResolver.EXPECT().ResolveHandle("ghost", callerHost).
		Return(nil, &logic.ResolutionError{Kind: logic.ResolutionNotFound,
			Ref: "ghost@" + callerHost})

	// Play
	req, _ := http.NewRequest("GET",
		ts.URL+"/api/actors/lookup?acct=ghost@"+callerHost, nil)
	req.Header.Set(apiKeyHeaderName, testApiKey)
	resp, err := http.DefaultClient.Do(req)

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_Handlers_Api_DeleteNote_NotFound(t *testing.T) {

	// Set up
	ctrl, h, ts := setupHandlerTest(t)
	defer ctrl.Finish()
	defer ts.Close()

	// Expectations
	h.mockPublisher.EXPECT().DeleteNote(localName, "https://blog.example/posts/gone").
		Return(false, nil)

	// Play
	reqBody := []byte(`{"actor": "` + localName + `",
		"content_url": "https://blog.example/posts/gone"}`)
	req, _ := http.NewRequest("DELETE", ts.URL+"/api/notes", bytes.NewReader(reqBody))
	req.Header.Set(apiKeyHeaderName, testApiKey)
	resp, err := http.DefaultClient.Do(req)

	// Check
	assert.Nil(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

const apiKeyHeaderName = "X-API-KEY"
