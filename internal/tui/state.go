package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptgenie/genie/internal/config"
	"github.com/promptgenie/genie/internal/llm"
	"github.com/promptgenie/genie/internal/session"
	"github.com/promptgenie/genie/internal/store"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Stores
	keyStore    *store.KeyStore
	promptStore *store.PromptStore
	userStore   *store.UserStore
	user        *store.User
	storeError  error
	stopSweeper func()

	// Setup wizard state
	setupStep     int
	keyNameInput  textinput.Model
	keyValueInput textinput.Model
	setupError    string

	// Idea entry
	input         textinput.Model
	suggestedTags []string

	// Question flow
	sess         *session.Session
	fromFallback bool
	current      int
	choiceCursor int
	rangeValue   int
	multiPicked  map[int]bool
	answerInput  textinput.Model

	// Hashtag step
	tagCursor int
	tagInput  textinput.Model
	tagTyping bool

	// Processing
	spinner     spinner.Model
	loadingText string

	// Result
	result           string
	resultInput      string
	resultIsRefactor bool
	statusMsg        string

	// Refactor
	refactorStep  int
	refactorInput textinput.Model
	reasonInput   textinput.Model

	// Library
	library     []store.SavedPrompt
	libCursor   int
	searchInput textinput.Model
	searching   bool

	// Provider
	provider      llm.Provider
	providerReady bool
	providerError error

	// Last failure shown on the error view
	lastError error
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "Describe what you want to create..."
	input.CharLimit = 500
	input.Width = 64

	keyName := textinput.New()
	keyName.Placeholder = "A name for this key (e.g. personal)"
	keyName.CharLimit = 60
	keyName.Width = 50

	keyValue := textinput.New()
	keyValue.Placeholder = "Paste your Gemini API key here..."
	keyValue.EchoMode = textinput.EchoPassword
	keyValue.CharLimit = 200
	keyValue.Width = 50

	answer := textinput.New()
	answer.Placeholder = "Type your answer..."
	answer.CharLimit = 300
	answer.Width = 56

	tag := textinput.New()
	tag.Placeholder = "#your-tag"
	tag.CharLimit = 40
	tag.Width = 30

	refactor := textinput.New()
	refactor.Placeholder = "Paste the prompt to refactor..."
	refactor.CharLimit = 2000
	refactor.Width = 64

	reason := textinput.New()
	reason.Placeholder = "What should change? (tone, length, focus...)"
	reason.CharLimit = 300
	reason.Width = 64

	search := textinput.New()
	search.Placeholder = "Search saved prompts..."
	search.CharLimit = 100
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return &state{
		input:         input,
		keyNameInput:  keyName,
		keyValueInput: keyValue,
		answerInput:   answer,
		tagInput:      tag,
		refactorInput: refactor,
		reasonInput:   reason,
		searchInput:   search,
		spinner:       sp,
		multiPicked:   map[int]bool{},
	}
}
