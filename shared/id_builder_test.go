package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_IdBuilder(t *testing.T) {
	idb := IdBuilder{"fedpub.test"}
	assert.Equal(t, "https://fedpub.test", idb.SiteUrl())
	assert.Equal(t, "https://fedpub.test/inbox", idb.SharedInbox())
	assert.Equal(t, "https://fedpub.test/activity/xyz", idb.ActivityUrl("xyz"))
	assert.Equal(t, "https://fedpub.test/u/alice", idb.UserUrl("alice"))
	assert.Equal(t, "https://fedpub.test/u/alice#main-key", idb.UserKeyId("alice"))
	assert.Equal(t, "https://fedpub.test/u/alice/inbox", idb.UserInbox("alice"))
	assert.Equal(t, "https://fedpub.test/u/alice/outbox", idb.UserOutbox("alice"))
	assert.Equal(t, "https://fedpub.test/u/alice/followers", idb.UserFollowers("alice"))
	assert.Equal(t, "https://fedpub.test/u/alice/following", idb.UserFollowing("alice"))
	assert.Equal(t, "https://fedpub.test/u/alice/status/42", idb.UserStatus("alice", 42))
	assert.Equal(t, "https://fedpub.test/u/alice/status/42/activity",
		idb.UserStatusActivity("alice", 42))
}
