package identity

import (
	"net/http"
	"strings"

	"github.com/zhulik/tally/internal/core"
)

// HeaderSource resolves the caller from a request header.
type HeaderSource struct {
	Header string
}

func NewHeaderSource(header string) HeaderSource {
	if header == "" {
		header = core.DefaultIdentityHeader
	}

	return HeaderSource{Header: header}
}

func (h HeaderSource) Resolve(r *http.Request) (core.Identity, error) {
	id := Normalize(r.Header.Get(h.Header))
	if id == "" {
		return "", core.ErrIdentityMissing
	}

	return id, nil
}

// Normalize trims the raw identity, hex addresses are case-insensitive so they are lower-cased.
func Normalize(raw string) core.Identity {
	id := strings.TrimSpace(raw)

	if strings.HasPrefix(id, "0x") || strings.HasPrefix(id, "0X") {
		id = strings.ToLower(id)
	}

	return core.Identity(id)
}
