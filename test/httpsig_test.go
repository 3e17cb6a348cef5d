package test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-fed/httpsig"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fedpub/logic"
	"fedpub/shared"
	"fedpub/test/mocks"
)

type sigCheckerHarness struct {
	cfg          *shared.Config
	mockLogger   *mocks.MockILogger
	mockResolver *mocks.MockIResolver
}

func setupSigCheckerTest(t *testing.T) (*gomock.Controller, *sigCheckerHarness, logic.IHttpSigChecker) {
	ctrl := gomock.NewController(t)
	h := sigCheckerHarness{
		cfg:          &shared.Config{Host: localHost, SigSkewMinutes: 30},
		mockLogger:   mocks.NewMockILogger(ctrl),
		mockResolver: mocks.NewMockIResolver(ctrl),
	}
	stubLogger(h.mockLogger)
	chk := logic.NewHttpSigChecker(h.cfg, h.mockLogger, h.mockResolver)
	return ctrl, &h, chk
}

func makeSigningKey(t *testing.T) (*rsa.PrivateKey, string) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate test key: %v", err)
	}
	pubKeyBytes, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	if err != nil {
		t.Fatalf("failed to marshal test public key: %v", err)
	}
	pubKeyPem := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubKeyBytes})
	return privKey, string(pubKeyPem)
}

func makeSignedInboxRequest(t *testing.T, privKey *rsa.PrivateKey, keyId string,
	date time.Time, body []byte) *http.Request {

	r := httptest.NewRequest("POST", "https://"+localHost+"/u/"+localName+"/inbox", nil)
	r.Header.Set("Date", date.UTC().Format(http.TimeFormat))
	r.Header.Set("Content-Type", "application/activity+json")

	headersToSign := []string{httpsig.RequestTarget, "date", "digest"}
	signer, _, err := httpsig.NewSigner([]httpsig.Algorithm{httpsig.RSA_SHA256},
		httpsig.DigestSha256, headersToSign, httpsig.Signature, 0)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}
	if err = signer.SignRequest(privKey, keyId, r, body); err != nil {
		t.Fatalf("failed to sign request: %v", err)
	}
	return r
}

func Test_SigChecker_ValidSignature(t *testing.T) {

	// Set up
	ctrl, h, chk := setupSigCheckerTest(t)
	defer ctrl.Finish()

	privKey, pubKeyPem := makeSigningKey(t)
	caller := makeCallerActor(callerHost, callerName)
	caller.PubKey = pubKeyPem
	keyId := caller.UserUrl + "#main-key"

	_, body := makeFollow(caller, "https://"+localHost+"/u/"+localName)
	r := makeSignedInboxRequest(t, privKey, keyId, time.Now(), body)

	// Expectations
	h.mockResolver.EXPECT().ResolveActor(caller.UserUrl, false).Return(caller, nil)

	// Play
	actor, verr, err := chk.Check(r, body)

	// Check
	assert.Nil(t, err)
	assert.Nil(t, verr)
	assert.Equal(t, caller.UserUrl, actor.UserUrl)
}

func Test_SigChecker_MissingSignature(t *testing.T) {

	// Set up
	ctrl, _, chk := setupSigCheckerTest(t)
	defer ctrl.Finish()

	caller := makeCallerActor(callerHost, callerName)
	_, body := makeFollow(caller, "https://"+localHost+"/u/"+localName)
	r := httptest.NewRequest("POST", "https://"+localHost+"/u/"+localName+"/inbox", nil)

	// Play
	actor, verr, err := chk.Check(r, body)

	// Check
	assert.Nil(t, err)
	assert.Nil(t, actor)
	if assert.NotNil(t, verr) {
		assert.Equal(t, logic.VerifUnsigned, verr.Kind)
	}
}

func Test_SigChecker_TamperedBody(t *testing.T) {

	// Set up
	ctrl, _, chk := setupSigCheckerTest(t)
	defer ctrl.Finish()

	privKey, _ := makeSigningKey(t)
	caller := makeCallerActor(callerHost, callerName)
	keyId := caller.UserUrl + "#main-key"

	_, body := makeFollow(caller, "https://"+localHost+"/u/"+localName)
	r := makeSignedInboxRequest(t, privKey, keyId, time.Now(), body)
	tampered := append([]byte{}, body...)
	tampered[len(tampered)-1] = '!'

	// Play: no resolver call; the digest check fails before actor resolution
	actor, verr, err := chk.Check(r, tampered)

	// Check
	assert.Nil(t, err)
	assert.Nil(t, actor)
	if assert.NotNil(t, verr) {
		assert.Equal(t, logic.VerifDigestMismatch, verr.Kind)
	}
}

func Test_SigChecker_PartialCoverage_Rejected(t *testing.T) {

	// Set up
	ctrl, _, chk := setupSigCheckerTest(t)
	defer ctrl.Finish()

	privKey, _ := makeSigningKey(t)
	caller := makeCallerActor(callerHost, callerName)
	keyId := caller.UserUrl + "#main-key"

	// A signature over Date alone, with a correct Digest header for an
	// arbitrary body; accepting it would authenticate any body the sender
	// chooses
	_, body := makeFollow(caller, "https://"+localHost+"/u/"+localName)
	r := httptest.NewRequest("POST", "https://"+localHost+"/u/"+localName+"/inbox", nil)
	r.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	r.Header.Set("Content-Type", "application/activity+json")
	signer, _, err := httpsig.NewSigner([]httpsig.Algorithm{httpsig.RSA_SHA256},
		httpsig.DigestSha256, []string{"date"}, httpsig.Signature, 0)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}
	if err = signer.SignRequest(privKey, keyId, r, body); err != nil {
		t.Fatalf("failed to sign request: %v", err)
	}

	// Play: no resolver call; coverage fails before actor resolution
	actor, verr, checkErr := chk.Check(r, body)

	// Check
	assert.Nil(t, checkErr)
	assert.Nil(t, actor)
	if assert.NotNil(t, verr) {
		assert.Equal(t, logic.VerifInvalidSignature, verr.Kind)
	}
}

func Test_SigChecker_StaleDate(t *testing.T) {

	// Set up
	ctrl, _, chk := setupSigCheckerTest(t)
	defer ctrl.Finish()

	privKey, _ := makeSigningKey(t)
	caller := makeCallerActor(callerHost, callerName)
	keyId := caller.UserUrl + "#main-key"

	_, body := makeFollow(caller, "https://"+localHost+"/u/"+localName)
	r := makeSignedInboxRequest(t, privKey, keyId, time.Now().Add(-2*time.Hour), body)

	// Play
	actor, verr, err := chk.Check(r, body)

	// Check
	assert.Nil(t, err)
	assert.Nil(t, actor)
	if assert.NotNil(t, verr) {
		assert.Equal(t, logic.VerifStaleTimestamp, verr.Kind)
	}
}

func Test_SigChecker_KeyRotation_ForcedRefresh(t *testing.T) {

	// Set up
	ctrl, h, chk := setupSigCheckerTest(t)
	defer ctrl.Finish()

	privKey, pubKeyPem := makeSigningKey(t)
	_, outdatedPem := makeSigningKey(t)

	staleActor := makeCallerActor(callerHost, callerName)
	staleActor.PubKey = outdatedPem
	freshActor := makeCallerActor(callerHost, callerName)
	freshActor.PubKey = pubKeyPem
	keyId := staleActor.UserUrl + "#main-key"

	_, body := makeFollow(freshActor, "https://"+localHost+"/u/"+localName)
	r := makeSignedInboxRequest(t, privKey, keyId, time.Now(), body)

	// Expectations: cached key fails, forced refresh brings the rotated key
	h.mockResolver.EXPECT().ResolveActor(staleActor.UserUrl, false).Return(staleActor, nil)
	h.mockResolver.EXPECT().ResolveActor(staleActor.UserUrl, true).Return(freshActor, nil)

	// Play
	actor, verr, err := chk.Check(r, body)

	// Check
	assert.Nil(t, err)
	assert.Nil(t, verr)
	assert.Equal(t, freshActor.PubKey, actor.PubKey)
}

func Test_SigChecker_WrongKey_Rejected(t *testing.T) {

	// Set up
	ctrl, h, chk := setupSigCheckerTest(t)
	defer ctrl.Finish()

	privKey, _ := makeSigningKey(t)
	_, wrongPem := makeSigningKey(t)

	caller := makeCallerActor(callerHost, callerName)
	caller.PubKey = wrongPem
	keyId := caller.UserUrl + "#main-key"

	_, body := makeFollow(caller, "https://"+localHost+"/u/"+localName)
	r := makeSignedInboxRequest(t, privKey, keyId, time.Now(), body)

	// Expectations: the refresh retry serves the same wrong key
	h.mockResolver.EXPECT().ResolveActor(caller.UserUrl, false).Return(caller, nil)
	h.mockResolver.EXPECT().ResolveActor(caller.UserUrl, true).Return(caller, nil)

	// Play
	actor, verr, err := chk.Check(r, body)

	// Check
	assert.Nil(t, err)
	assert.Nil(t, actor)
	if assert.NotNil(t, verr) {
		assert.Equal(t, logic.VerifInvalidSignature, verr.Kind)
	}
}
