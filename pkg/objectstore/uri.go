package objectstore

import (
	"fmt"
	"strings"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// URI is a parsed object reference of the form <scheme>://<bucket>/<path>.
type URI struct {
	Scheme string
	Bucket string
	Key    string
}

func (u URI) String() string {
	return fmt.Sprintf("%s://%s/%s", u.Scheme, u.Bucket, u.Key)
}

// ParseURI validates and splits an object URI. The scheme must match the
// configured scheme, the bucket must be on the allow-list, and no path
// segment may be a traversal segment.
func ParseURI(raw, scheme string, allowedBuckets []string) (URI, error) {
	prefix := scheme + "://"
	if !strings.HasPrefix(raw, prefix) {
		return URI{}, flowerr.New(flowerr.InputInvalid, "parse_uri", "unsupported scheme in %q (want %s)", raw, prefix)
	}

	rest := strings.TrimPrefix(raw, prefix)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return URI{}, flowerr.New(flowerr.InputInvalid, "parse_uri", "malformed object uri %q", raw)
	}

	allowed := false
	for _, b := range allowedBuckets {
		if b == bucket {
			allowed = true
			break
		}
	}
	if !allowed {
		return URI{}, flowerr.New(flowerr.InputInvalid, "parse_uri", "bucket %q is not allowed", bucket)
	}

	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return URI{}, flowerr.New(flowerr.InputInvalid, "parse_uri", "invalid path segment in %q", raw)
		}
	}

	return URI{Scheme: scheme, Bucket: bucket, Key: key}, nil
}
