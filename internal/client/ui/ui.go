package ui

import "github.com/dmitrijs2005/textfix/internal/logging"

// Deps are the collaborators a UI needs. The services package provides
// all of them.
type Deps struct {
	Auth     AuthChecker
	Analyzer Analyzer
	History  HistorySource
	Profile  ProfileSource
	Notifier Notifier
	Logger   logging.Logger
}

// UI bundles the controller with every panel subscribed to it.
type UI struct {
	Controller *Controller
	Chat       *Chat
	History    *HistoryList
	Dropdown   *HistoryList
	Profile    *ProfilePanel
}

func New(d Deps) *UI {
	ctrl := NewController(NewTranscript(), d.Logger)
	return &UI{
		Controller: ctrl,
		Chat:       NewChat(ctrl, d.Auth, d.Analyzer, d.Notifier, d.Logger),
		History:    NewHistoryList(ModeFull, ctrl, d.History, d.Notifier, d.Logger),
		Dropdown:   NewHistoryList(ModeCompact, ctrl, d.History, d.Notifier, d.Logger),
		Profile:    NewProfilePanel(ctrl, d.Profile, d.Notifier, d.Logger),
	}
}
