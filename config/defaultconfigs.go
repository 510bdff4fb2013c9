package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		Colors: ConfigColors{
			Background: "#282C34",
			Cell:       "#61AFEF",
			Line:       "#3E4451",
			X:          "white",
			O:          "#282C34",
			Cursor:     "#98C379",
			Highlight:  "#D19A66",
			Accent:     "#E06C75",
		},
		Symbols: ConfigSymbols{
			X: 'X',
			O: 'O',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Sound: SoundConfig{
			Enabled: true,
		},
		Animation: AnimationConfig{
			FlashCount:      5,
			FlashIntervalMS: 200,
		},
		Players: PlayersConfig{
			X: "Player 1",
			O: "Player 2",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
