package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GetHostName(t *testing.T) {
	host, err := GetHostName("https://genart.social/users/twilliability")
	assert.Nil(t, err)
	assert.Equal(t, "genart.social", host)

	host, err = GetHostName("https://genart.social:8443/users/twilliability")
	assert.Nil(t, err)
	assert.Equal(t, "genart.social", host)
}

func Test_ValidateHandle(t *testing.T) {
	assert.Nil(t, ValidateHandle("alice"))
	assert.Nil(t, ValidateHandle("blog-bot_2.0"))
	assert.NotNil(t, ValidateHandle(""))
	assert.NotNil(t, ValidateHandle("Alice"))
	assert.NotNil(t, ValidateHandle("with space"))
	assert.NotNil(t, ValidateHandle("bob@example.com"))
}

func Test_TruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "exactly-ten", TruncateWithEllipsis("exactly-ten", 11))
	truncated := TruncateWithEllipsis("the quick brown fox jumps over the lazy dog", 20)
	assert.Equal(t, "the quick brown fox…", truncated)
}

func Test_MakeFullMoniker(t *testing.T) {
	assert.Equal(t, "@alice@fedpub.test", MakeFullMoniker("fedpub.test", "alice"))
}
