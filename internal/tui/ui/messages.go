package ui

// ThemeChangedMsg is sent to the active view when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// SignedInMsg is emitted by the login view after a token was stored.
type SignedInMsg struct{}

// SignedOutMsg is emitted after logout. Err is set when the token could not
// be removed; the session then still counts as signed in.
type SignedOutMsg struct {
	Err error
}
