package internal

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

type ResolveID [16]byte

func NewResolveID() (ResolveID, error) {
	var rid ResolveID
	_, err := rand.Read(rid[:])
	return rid, err
}

func (r ResolveID) Bytes() []byte {
	return r[:]
}

func (r ResolveID) String() string {
	// base64url, no padding, compact
	return base64.RawURLEncoding.EncodeToString(r[:])
}

func ParseResolveID(resolveID string) (ResolveID, error) {
	var rid ResolveID

	raw, err := base64.RawURLEncoding.DecodeString(resolveID)
	if err != nil {
		return rid, err
	}
	if len(raw) != len(rid) {
		return rid, errors.New("invalid resolve id size")
	}

	copy(rid[:], raw)
	return rid, nil
}
