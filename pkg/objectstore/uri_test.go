package objectstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

func TestParseURI(t *testing.T) {
	allowed := []string{"foundry-artifacts"}

	u, err := ParseURI("s3://foundry-artifacts/raw/cats_vs_dogs.zip", "s3", allowed)
	require.NoError(t, err)
	assert.Equal(t, "s3", u.Scheme)
	assert.Equal(t, "foundry-artifacts", u.Bucket)
	assert.Equal(t, "raw/cats_vs_dogs.zip", u.Key)
	assert.Equal(t, "s3://foundry-artifacts/raw/cats_vs_dogs.zip", u.String())
}

func TestParseURI_Invalid(t *testing.T) {
	allowed := []string{"foundry-artifacts"}

	tests := []struct {
		name string
		raw  string
	}{
		{"wrong scheme", "gs://foundry-artifacts/raw/x.zip"},
		{"no scheme", "foundry-artifacts/raw/x.zip"},
		{"missing key", "s3://foundry-artifacts"},
		{"empty key", "s3://foundry-artifacts/"},
		{"empty bucket", "s3:///raw/x.zip"},
		{"bucket not allowed", "s3://other-bucket/raw/x.zip"},
		{"dot dot segment", "s3://foundry-artifacts/raw/../secrets"},
		{"dot segment", "s3://foundry-artifacts/./x.zip"},
		{"empty segment", "s3://foundry-artifacts/raw//x.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseURI(tt.raw, "s3", allowed)
			require.Error(t, err)
			assert.Equal(t, flowerr.InputInvalid, flowerr.KindOf(err))
		})
	}
}
