package logic

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-fed/httpsig"

	"fedpub/dal"
	"fedpub/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_httpsig_checker.go -package mocks fedpub/logic IHttpSigChecker

type IHttpSigChecker interface {
	// Check verifies the request's HTTP signature and returns the sender.
	// A *VerificationError means the request is bad; error means we failed.
	Check(r *http.Request, body []byte) (*dal.RemoteActor, *VerificationError, error)
}

type httpSigChecker struct {
	cfg       *shared.Config
	logger    shared.ILogger
	resolver  IResolver
	reKeyId   *regexp.Regexp
	reSigHdrs *regexp.Regexp
}

// The signature must cover these fields; a valid Digest header alone proves
// nothing unless the signature binds it to the request.
var requiredSigCoverage = []string{"(request-target)", "date", "digest"}

func NewHttpSigChecker(cfg *shared.Config, logger shared.ILogger, resolver IResolver) IHttpSigChecker {
	reKeyId := regexp.MustCompile("keyId=['\"]([^'\"]+)['\"]")
	reSigHdrs := regexp.MustCompile("headers=['\"]([^'\"]+)['\"]")
	return &httpSigChecker{cfg, logger, resolver, reKeyId, reSigHdrs}
}

func (chk *httpSigChecker) Check(r *http.Request, body []byte) (*dal.RemoteActor, *VerificationError, error) {

	var sigHeader = r.Header.Get("Signature")
	groups := chk.reKeyId.FindStringSubmatch(sigHeader)
	if groups == nil {
		return nil, &VerificationError{VerifUnsigned, "missing or invalid 'Signature' header"}, nil
	}
	keyId := groups[1]

	if verr := chk.checkCoverage(sigHeader); verr != nil {
		return nil, verr, nil
	}
	if verr := chk.checkDate(r); verr != nil {
		return nil, verr, nil
	}
	if verr := chk.checkDigest(r, body); verr != nil {
		return nil, verr, nil
	}

	// keyId is the actor URL plus a fragment naming the key
	actorUrl := keyId
	if hashIx := strings.IndexByte(actorUrl, '#'); hashIx != -1 {
		actorUrl = actorUrl[:hashIx]
	}

	actor, err := chk.resolver.ResolveActor(actorUrl, false)
	if err != nil {
		if resErr, ok := err.(*ResolutionError); ok {
			return nil, &VerificationError{VerifActorUnresolvable, resErr.Error()}, nil
		}
		return nil, nil, err
	}

	verifier, err := httpsig.NewVerifier(r)
	if err != nil {
		chk.logger.Errorf("Failed to create signature verifier: %v", err)
		return nil, &VerificationError{VerifUnsigned, fmt.Sprintf("cannot parse signature: %v", err)}, nil
	}

	verr := verifyWithKey(verifier, actor.PubKey)
	if verr == nil {
		return actor, nil, nil
	}

	// The peer may have rotated its key since we cached the actor; one
	// forced refresh before giving up.
	actor, err = chk.resolver.ResolveActor(actorUrl, true)
	if err != nil {
		return nil, verr, nil
	}
	if verr = verifyWithKey(verifier, actor.PubKey); verr != nil {
		return nil, verr, nil
	}
	return actor, nil, nil
}

func verifyWithKey(verifier httpsig.Verifier, pubKeyPem string) *VerificationError {
	block, _ := pem.Decode([]byte(pubKeyPem))
	if block == nil {
		return &VerificationError{VerifInvalidSignature, "sender's public key is not valid PEM"}
	}
	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return &VerificationError{VerifInvalidSignature,
			fmt.Sprintf("failed to parse sender's public key: %v", err)}
	}
	if err = verifier.Verify(pubKey, httpsig.RSA_SHA256); err != nil {
		return &VerificationError{VerifInvalidSignature, fmt.Sprintf("incorrect signature: %v", err)}
	}
	return nil
}

// checkCoverage rejects signatures that don't bind the required fields.
// Without the 'headers' parameter only Date is signed, which is not enough.
func (chk *httpSigChecker) checkCoverage(sigHeader string) *VerificationError {
	covered := make(map[string]bool)
	if groups := chk.reSigHdrs.FindStringSubmatch(sigHeader); groups != nil {
		for _, name := range strings.Fields(groups[1]) {
			covered[strings.ToLower(name)] = true
		}
	}
	for _, name := range requiredSigCoverage {
		if !covered[name] {
			return &VerificationError{VerifInvalidSignature,
				fmt.Sprintf("signature does not cover required field %q", name)}
		}
	}
	return nil
}

func (chk *httpSigChecker) checkDate(r *http.Request) *VerificationError {
	dateStr := r.Header.Get("Date")
	if dateStr == "" {
		return &VerificationError{VerifUnsigned, "missing 'Date' header"}
	}
	date, err := http.ParseTime(dateStr)
	if err != nil {
		return &VerificationError{VerifUnsigned, fmt.Sprintf("invalid 'Date' header: %v", err)}
	}
	skew := time.Duration(chk.cfg.SigSkewMinutes) * time.Minute
	elapsed := time.Since(date)
	if elapsed > skew || elapsed < -skew {
		return &VerificationError{VerifStaleTimestamp,
			fmt.Sprintf("request date %s outside accepted window", dateStr)}
	}
	return nil
}

func (chk *httpSigChecker) checkDigest(r *http.Request, body []byte) *VerificationError {
	digestHeader := r.Header.Get("Digest")
	if digestHeader == "" {
		return &VerificationError{VerifUnsigned, "missing 'Digest' header"}
	}
	eqIx := strings.IndexByte(digestHeader, '=')
	if eqIx == -1 || !strings.EqualFold(digestHeader[:eqIx], "SHA-256") {
		return &VerificationError{VerifDigestMismatch,
			fmt.Sprintf("unsupported digest algorithm in %q", digestHeader)}
	}
	sum := sha256.Sum256(body)
	expected := base64.StdEncoding.EncodeToString(sum[:])
	if digestHeader[eqIx+1:] != expected {
		return &VerificationError{VerifDigestMismatch, "digest does not match request body"}
	}
	return nil
}
