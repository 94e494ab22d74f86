package pkg

import (
	"net/http"
	"strings"
)

// OwnerIDHeader carries the opaque owner id resolved by the identity provider
// in front of the service.
const OwnerIDHeader = "X-Owner-ID"

func OwnerID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(OwnerIDHeader))
}
