package envutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("AGRINET_TEST_INT", "nope")
	assert.Equal(t, 7, Int("AGRINET_TEST_INT", 7))

	t.Setenv("AGRINET_TEST_INT", " 42 ")
	assert.Equal(t, 42, Int("AGRINET_TEST_INT", 7))
}

func TestBool(t *testing.T) {
	t.Setenv("AGRINET_TEST_BOOL", "on")
	assert.True(t, Bool("AGRINET_TEST_BOOL", false))

	t.Setenv("AGRINET_TEST_BOOL", "")
	assert.True(t, Bool("AGRINET_TEST_BOOL", true))
}

func TestList(t *testing.T) {
	t.Setenv("AGRINET_TEST_LIST", "http://a, ,http://b,")
	assert.Equal(t, []string{"http://a", "http://b"}, List("AGRINET_TEST_LIST"))

	t.Setenv("AGRINET_TEST_LIST", "")
	assert.Nil(t, List("AGRINET_TEST_LIST"))
}
