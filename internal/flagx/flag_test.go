package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "http://api.local", "-x", "other"}, []string{"-a"})
	assert.Equal(t, []string{"-a", "http://api.local"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	got := FilterArgs([]string{"--config=conf.json", "-a=url"}, []string{"--config"})
	assert.Equal(t, []string{"--config=conf.json"}, got)
}

func TestFilterArgs_NothingAllowed(t *testing.T) {
	got := FilterArgs([]string{"-a", "url"}, []string{"-c"})
	assert.Empty(t, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	got := FilterArgs([]string{"-a", "-c", "conf.json"}, []string{"-a", "-c"})
	assert.Equal(t, []string{"-a", "-c", "conf.json"}, got)
}

func TestJSONConfigFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"backoffice", "-c", "conf.json", "-a", "ignored"}
	assert.Equal(t, "conf.json", JSONConfigFlags())

	os.Args = []string{"backoffice"}
	assert.Equal(t, "", JSONConfigFlags())
}
