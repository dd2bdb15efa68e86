package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailDetail(t *testing.T) {
	s := Fail(MalformedCIF)
	assert.True(t, Failed(s), "should report failure")
	assert.False(t, Succeeded(s), "should not report success")
	assert.True(t, Is(s, MalformedCIF), "should carry the MalformedCIF detail")
	assert.False(t, Is(s, Usage), "should not carry an unrelated detail")
}

func TestErrorStrings(t *testing.T) {
	cases := []struct {
		s    Status
		want string
	}{
		{Fail(InputUnavailable), "input unavailable"},
		{Fail(OutputUnavailable), "output unavailable"},
		{Fail(MalformedCIF), "malformed CIF"},
		{Fail(Usage), "usage error"},
		{Success, "success"},
	}
	for _, tt := range cases {
		assert.Equal(t, tt.want, tt.s.Error())
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(Success))
	assert.Equal(t, 2, ExitCode(Fail(InputUnavailable)))
	assert.Equal(t, 2, ExitCode(Fail(OutputUnavailable)))
	assert.Equal(t, 3, ExitCode(Fail(MalformedCIF)))
	assert.Equal(t, 64, ExitCode(Fail(Usage)))
}
