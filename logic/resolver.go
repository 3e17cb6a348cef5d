package logic

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fedpub/dal"
	"fedpub/dto"
	"fedpub/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_resolver.go -package mocks fedpub/logic IResolver

type IResolver interface {
	// ResolveHandle finds the actor behind handle@host through the host's
	// webfinger endpoint.
	ResolveHandle(handle, host string) (*dal.RemoteActor, error)
	// ResolveActor returns the actor document behind userUrl, from cache if
	// it's fresh enough, fetching otherwise. forceRefresh bypasses the cache.
	ResolveActor(userUrl string, forceRefresh bool) (*dal.RemoteActor, error)
}

const resolveTimeoutSec = 10

type resolver struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	repo      dal.IRepo
}

func NewResolver(cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
	repo dal.IRepo,
) IResolver {
	return &resolver{cfg, logger, userAgent, metrics, repo}
}

func (res *resolver) ResolveHandle(handle, host string) (*dal.RemoteActor, error) {

	moniker := handle + "@" + host

	// Known already?
	actor, err := res.repo.GetRemoteActorByHandle(handle, host)
	if err != nil {
		return nil, err
	}
	if actor != nil && res.isFresh(actor) {
		return actor, nil
	}

	obs := res.metrics.StartApubRequestOut("webfinger")
	defer obs.Finish()

	wfUrl := fmt.Sprintf("https://%s/.well-known/webfinger?resource=%s",
		host, url.QueryEscape("acct:"+moniker))
	body, status, err := res.getJson(wfUrl, "application/jrd+json")
	if err != nil {
		return nil, &ResolutionError{Kind: ResolutionUnreachable, Ref: moniker, Err: err}
	}
	if status == http.StatusNotFound || status == http.StatusGone {
		return nil, &ResolutionError{Kind: ResolutionNotFound, Ref: moniker}
	}
	if status != http.StatusOK {
		return nil, &ResolutionError{Kind: ResolutionUnreachable, Ref: moniker,
			Err: fmt.Errorf("webfinger returned status %d", status)}
	}

	var wf dto.WebfingerResp
	if err = json.Unmarshal(body, &wf); err != nil {
		return nil, &ResolutionError{Kind: ResolutionMalformed, Ref: moniker, Err: err}
	}
	userUrl := ""
	for _, link := range wf.Links {
		if link.Rel != "self" || link.Href == "" {
			continue
		}
		userUrl = link.Href
		// An explicitly typed self link wins over an untyped one
		if strings.Contains(link.Type, "activity+json") {
			break
		}
	}
	if userUrl == "" {
		return nil, &ResolutionError{Kind: ResolutionNotFound, Ref: moniker,
			Err: fmt.Errorf("webfinger response has no self link")}
	}

	return res.ResolveActor(userUrl, false)
}

func (res *resolver) ResolveActor(userUrl string, forceRefresh bool) (*dal.RemoteActor, error) {

	actor, err := res.repo.GetRemoteActor(userUrl)
	if err != nil {
		return nil, err
	}
	if actor != nil && !forceRefresh && res.isFresh(actor) {
		return actor, nil
	}

	fetched, resErr := res.fetchActor(userUrl)
	if resErr != nil {
		// A stale cached copy beats a transient fetch failure
		if actor != nil && resErr.Kind == ResolutionUnreachable && !forceRefresh {
			res.logger.Warnf("Actor refresh failed, using stale copy: %s: %v", userUrl, resErr)
			return actor, nil
		}
		return nil, resErr
	}

	if err = res.repo.UpsertRemoteActor(fetched); err != nil {
		return nil, err
	}
	return fetched, nil
}

func (res *resolver) isFresh(actor *dal.RemoteActor) bool {
	maxAge := time.Duration(res.cfg.ActorCacheHours) * time.Hour
	return time.Since(actor.RefreshedAt) < maxAge
}

func (res *resolver) fetchActor(userUrl string) (*dal.RemoteActor, *ResolutionError) {

	obs := res.metrics.StartApubRequestOut("get_actor")
	defer obs.Finish()

	body, status, err := res.getJson(userUrl, "application/activity+json")
	if err != nil {
		return nil, &ResolutionError{Kind: ResolutionUnreachable, Ref: userUrl, Err: err}
	}
	if status == http.StatusNotFound || status == http.StatusGone {
		return nil, &ResolutionError{Kind: ResolutionNotFound, Ref: userUrl}
	}
	if status != http.StatusOK {
		return nil, &ResolutionError{Kind: ResolutionUnreachable, Ref: userUrl,
			Err: fmt.Errorf("actor fetch returned status %d", status)}
	}

	var info dto.UserInfo
	if err = json.Unmarshal(body, &info); err != nil {
		return nil, &ResolutionError{Kind: ResolutionMalformed, Ref: userUrl, Err: err}
	}
	if info.Id == "" || info.Inbox == "" || info.PublicKey.PublicKeyPem == "" {
		return nil, &ResolutionError{Kind: ResolutionMalformed, Ref: userUrl,
			Err: fmt.Errorf("actor document is missing id, inbox or public key")}
	}

	host, err := shared.GetHostName(info.Id)
	if err != nil {
		return nil, &ResolutionError{Kind: ResolutionMalformed, Ref: userUrl, Err: err}
	}

	actor := &dal.RemoteActor{
		UserUrl:     info.Id,
		Handle:      info.PreferredUserName,
		Host:        host,
		Inbox:       info.Inbox,
		SharedInbox: info.Endpoints.SharedInbox,
		PubKey:      info.PublicKey.PublicKeyPem,
		Name:        info.Name,
		Summary:     info.Summary,
		RefreshedAt: time.Now().UTC(),
	}
	return actor, nil
}

func (res *resolver) getJson(getUrl, accept string) (body []byte, status int, err error) {

	client := http.Client{Timeout: time.Second * resolveTimeoutSec}
	var req *http.Request
	if req, err = http.NewRequest("GET", getUrl, nil); err != nil {
		return nil, 0, err
	}
	res.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", accept)

	var resp *http.Response
	if resp, err = client.Do(req); err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	if body, err = io.ReadAll(resp.Body); err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
