package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"termtactoe/engine"
)

func TestGameSetup_Start(t *testing.T) {
	// Given: a setup form prefilled with default names
	var got engine.GameConfig
	var sound bool
	setup := NewGameSetup(engine.DefaultConfig(), true, func(c engine.GameConfig, s bool) {
		got, sound = c, s
	}, func() {}, nil)

	// When: the players type their names and turn sound off
	setup.playerX = "  Ada  "
	setup.playerO = ""
	setup.sound = false
	setup.Start()

	// Then: names are normalized before they reach the caller
	assert.Equal(t, engine.GameConfig{PlayerX: "Ada", PlayerO: "Player 2"}, got)
	assert.False(t, sound)
}

func TestGameSetup_Defaults(t *testing.T) {
	setup := NewGameSetup(engine.GameConfig{PlayerX: "Ada", PlayerO: "Grace"}, false, func(engine.GameConfig, bool) {}, func() {}, nil)

	assert.Equal(t, engine.GameConfig{PlayerX: "Ada", PlayerO: "Grace"}, setup.Config())
	assert.NotNil(t, setup.Form())
}
