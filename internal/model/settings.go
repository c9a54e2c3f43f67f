package model

type Settings struct {
	PrimaryColor string `json:"primaryColor" yaml:"primary_color" validate:"required,iscolor"`
	AccentColor  string `json:"accentColor" yaml:"accent_color" validate:"required,iscolor"`
	BgColor      string `json:"bgColor" yaml:"bg_color" validate:"required,iscolor"`
	CardColor    string `json:"cardColor" yaml:"card_color" validate:"required,iscolor"`
	FontFamily   string `json:"fontFamily" yaml:"font_family" validate:"required"`
	FontSize     string `json:"fontSize" yaml:"font_size" validate:"required"`
}

func DefaultSettings() Settings {
	return Settings{
		PrimaryColor: "#5b8def",
		AccentColor:  "#ffcc00",
		BgColor:      "#f7f9fc",
		CardColor:    "#ffffff",
		FontFamily:   `"Inter", system-ui, -apple-system, "Segoe UI", Roboto, "Helvetica Neue", Arial`,
		FontSize:     "16px",
	}
}

// WithDefaults fills empty fields from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.PrimaryColor == "" {
		s.PrimaryColor = d.PrimaryColor
	}
	if s.AccentColor == "" {
		s.AccentColor = d.AccentColor
	}
	if s.BgColor == "" {
		s.BgColor = d.BgColor
	}
	if s.CardColor == "" {
		s.CardColor = d.CardColor
	}
	if s.FontFamily == "" {
		s.FontFamily = d.FontFamily
	}
	if s.FontSize == "" {
		s.FontSize = d.FontSize
	}
	return s
}
