package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	for _, s := range []string{"ON", "on", "1"} {
		assert.Equal(t, On, NewConfig(s), s)
	}
	for _, s := range []string{"OFF", "off", "0", "maybe", ""} {
		assert.Equal(t, Off, NewConfig(s), s)
	}
}

func TestConfigString(t *testing.T) {
	assert.Equal(t, "ON", On.String())
	assert.Equal(t, "OFF", NewConfig("false").String())
}
