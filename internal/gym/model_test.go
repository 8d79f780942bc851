package gym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_HasMember(t *testing.T) {
	rec := &Record{ID: "g1", MemberIDs: []string{"a", "b"}}

	assert.True(t, rec.HasMember("a"))
	assert.True(t, rec.HasMember("b"))
	assert.False(t, rec.HasMember("c"))

	empty := &Record{ID: "g2"}
	assert.False(t, empty.HasMember("a"))
}
