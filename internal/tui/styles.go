package tui

import "github.com/rgehrsitz/firego/internal/tui/tuistyles"

// Styles the dashboard frame uses; scenes import tuistyles directly.
var (
	AppStyle         = tuistyles.AppStyle
	TitleStyle       = tuistyles.TitleStyle
	SubtitleStyle    = tuistyles.SubtitleStyle
	StatusBarStyle   = tuistyles.StatusBarStyle
	BorderStyle      = tuistyles.BorderStyle
	ActiveTabStyle   = tuistyles.ActiveTabStyle
	InactiveTabStyle = tuistyles.InactiveTabStyle
	ErrorStyle       = tuistyles.ErrorStyle
	InfoStyle        = tuistyles.InfoStyle
)
