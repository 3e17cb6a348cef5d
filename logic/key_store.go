package logic

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"fedpub/dal"
	"fedpub/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_key_store.go -package mocks fedpub/logic IKeyStore

type IKeyStore interface {
	EnsureKeyPair(user string) error
	GetPrivKey(user string) (*rsa.PrivateKey, error)
	MakeKeyPair() (pubKey, privKey string, err error)
}

type keyStore struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
}

func NewKeyStore(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo) IKeyStore {
	return &keyStore{cfg, logger, repo}
}

// EnsureKeyPair generates and stores a key pair for the account if it
// doesn't have one yet. No-op otherwise.
func (ks *keyStore) EnsureKeyPair(user string) error {

	acct, err := ks.repo.GetAccount(user)
	if err != nil {
		return err
	}
	if acct == nil {
		return fmt.Errorf("no such account: %s", user)
	}
	if acct.PubKey != "" {
		return nil
	}

	ks.logger.Infof("Generating key pair for %s", user)
	pubKey, privKey, err := ks.MakeKeyPair()
	if err != nil {
		return err
	}
	return ks.repo.SetKeyPair(user, pubKey, privKey)
}

func (ks *keyStore) GetPrivKey(user string) (*rsa.PrivateKey, error) {

	privKeyStr, err := ks.repo.GetPrivKey(user)
	if err != nil {
		return nil, err
	}
	if privKeyStr == "" {
		return nil, fmt.Errorf("account has no private key: %s", user)
	}

	block, _ := pem.Decode([]byte(privKeyStr))
	if block == nil {
		return nil, errors.New("failed to decode private key PEM")
	}
	privKeyBytes := block.Bytes
	if x509.IsEncryptedPEMBlock(block) {
		privKeyBytes, err = x509.DecryptPEMBlock(block, []byte(ks.cfg.Secrets.PrivKeyPass))
		if err != nil {
			return nil, err
		}
	}
	privKey, err := x509.ParsePKCS1PrivateKey(privKeyBytes)
	if err != nil {
		return nil, err
	}
	return privKey, nil
}

func (ks *keyStore) MakeKeyPair() (pubKey, privKey string, err error) {

	pubKey = ""
	privKey = ""
	err = nil

	// Generate RSA key
	var key *rsa.PrivateKey
	key, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return
	}
	// Extract public component.
	pub := key.Public()

	// Encode private key to PKCS#1, with password
	keyRaw := x509.MarshalPKCS1PrivateKey(key)
	encBlock, err := x509.EncryptPEMBlock(
		rand.Reader, "RSA PRIVATE KEY", keyRaw,
		[]byte(ks.cfg.Secrets.PrivKeyPass), x509.PEMCipherAES256)
	if err != nil {
		return
	}
	keyPEM := pem.EncodeToMemory(encBlock)

	// Public key goes out in actor documents; peers expect PKIX
	var pubRaw []byte
	pubRaw, err = x509.MarshalPKIXPublicKey(pub.(*rsa.PublicKey))
	if err != nil {
		return
	}
	pubPEM := pem.EncodeToMemory(
		&pem.Block{
			Type:  "PUBLIC KEY",
			Bytes: pubRaw,
		},
	)

	pubKey = string(pubPEM)
	privKey = string(keyPEM)

	return
}
