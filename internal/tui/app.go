package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptgenie/genie/internal/config"
	"github.com/promptgenie/genie/internal/export"
	"github.com/promptgenie/genie/internal/generate"
	"github.com/promptgenie/genie/internal/hashtag"
	"github.com/promptgenie/genie/internal/llm"
	"github.com/promptgenie/genie/internal/question"
	"github.com/promptgenie/genie/internal/session"
	"github.com/promptgenie/genie/internal/store"
	"github.com/promptgenie/genie/internal/synth"
)

type view int

const (
	viewWelcome view = iota
	viewSetup
	viewQuestions
	viewProcessing
	viewResult
	viewRefactor
	viewLibrary
	viewHelp
	viewError
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	s := newState()

	cfg, _ := config.Load()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s.config = cfg

	if dir, err := config.DataDir(); err != nil {
		s.storeError = err
	} else {
		s.keyStore = store.NewKeyStore(dir)
		s.promptStore = store.NewPromptStore(dir)
		s.userStore = store.NewUserStore(dir)
		s.user, _ = s.userStore.Load()
	}

	if s.keyStore == nil {
		s.needsSetup = true
	} else if active, err := s.keyStore.Active(); err != nil || active == nil {
		s.needsSetup = true
	}

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.promptStore != nil {
		a.state.stopSweeper = a.state.promptStore.StartSweeper(store.SweepInterval)
	}

	if a.state.needsSetup {
		a.view = viewSetup
		a.state.keyNameInput.Focus()
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	a.state.input.Focus()
	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.connectProvider(),
	)
}

func (a *App) newProvider(apiKey string) llm.Provider {
	if a.state.config.BaseURL != "" {
		return llm.NewGeminiProviderWithBaseURL(apiKey, a.state.config.Model, a.state.config.BaseURL)
	}
	return llm.NewGeminiProvider(apiKey, a.state.config.Model)
}

func (a *App) connectProvider() tea.Cmd {
	return func() tea.Msg {
		active, err := a.state.keyStore.Active()
		if err != nil {
			return providerErrorMsg{err}
		}
		if active == nil {
			return providerErrorMsg{errors.New("no active API key")}
		}

		provider := a.newProvider(active.Key)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			_ = a.state.keyStore.RecordProbe(active.ID, false)
			return providerErrorMsg{err}
		}
		_ = a.state.keyStore.RecordProbe(active.ID, true)

		return providerReadyMsg{provider}
	}
}

func (a *App) saveKey(name, apiKey string) tea.Cmd {
	return func() tea.Msg {
		provider := a.newProvider(apiKey)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		working := provider.Ping(ctx) == nil

		rec, err := a.state.keyStore.Add(name, apiKey, working)
		if err != nil {
			return setupFailedMsg{err}
		}
		if err := a.state.keyStore.SetActive(rec.ID); err != nil {
			return setupFailedMsg{err}
		}
		return keySavedMsg{key: rec, name: name}
	}
}

func (a *App) generateQuestions(input string) tea.Cmd {
	gen := generate.NewGenerator(a.state.provider, a.state.config.Model)
	return func() tea.Msg {
		result, err := gen.Generate(context.Background(), input)
		if err != nil {
			return flowFailedMsg{err}
		}
		return questionsMsg{result}
	}
}

func (a *App) synthesize() tea.Cmd {
	syn := synth.NewSynthesizer(a.state.provider, a.state.config.Model)
	sess := a.state.sess
	return func() tea.Msg {
		content, err := syn.Synthesize(context.Background(), sess)
		if err != nil {
			return flowFailedMsg{err}
		}
		return promptMsg{content: content}
	}
}

func (a *App) refactor(original, reason string) tea.Cmd {
	syn := synth.NewSynthesizer(a.state.provider, a.state.config.Model)
	return func() tea.Msg {
		content, err := syn.Refactor(context.Background(), original, reason)
		if err != nil {
			return flowFailedMsg{err}
		}
		return promptMsg{content: content, refactored: true}
	}
}

func (a *App) copyResult() tea.Cmd {
	content := a.state.result
	return func() tea.Msg {
		if err := clipboard.WriteAll(content); err != nil {
			return noticeMsg{"Copy failed: " + err.Error()}
		}
		return noticeMsg{"Copied to clipboard"}
	}
}

func (a *App) savePrompt() tea.Cmd {
	s := a.state
	var tags []string
	if s.sess != nil && !s.resultIsRefactor {
		tags = s.sess.Hashtags
	}
	return func() tea.Msg {
		if s.promptStore == nil {
			return noticeMsg{"Library unavailable"}
		}
		if _, err := s.promptStore.Save(s.result, s.resultInput, tags); err != nil {
			return noticeMsg{"Save failed: " + err.Error()}
		}
		return noticeMsg{"Saved to library (kept for 23h)"}
	}
}

func (a *App) exportPrompt() tea.Cmd {
	s := a.state
	var tags []string
	if s.sess != nil && !s.resultIsRefactor {
		tags = s.sess.Hashtags
	}
	dir := s.config.ExportDir
	if dir == "" {
		dir = "."
	}
	return func() tea.Msg {
		path, err := export.WritePrompt(dir, s.result, tags)
		if err != nil {
			return noticeMsg{"Export failed: " + err.Error()}
		}
		return noticeMsg{"Exported to " + path}
	}
}

func (a *App) loadLibrary(query string) tea.Cmd {
	s := a.state
	return func() tea.Msg {
		if s.promptStore == nil {
			return libraryMsg{err: errors.New("library unavailable")}
		}
		var (
			prompts []store.SavedPrompt
			err     error
		)
		if query == "" {
			prompts, err = s.promptStore.List()
		} else {
			prompts, err = s.promptStore.Search(query)
		}
		return libraryMsg{prompts: prompts, err: err}
	}
}

func (a *App) deletePrompt(id string) tea.Cmd {
	s := a.state
	query := strings.TrimSpace(s.searchInput.Value())
	return func() tea.Msg {
		if err := s.promptStore.Delete(id); err != nil {
			return libraryMsg{err: err}
		}
		msg := a.loadLibrary(query)()
		return msg
	}
}

type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }
type keySavedMsg struct {
	key  *store.APIKey
	name string
}
type setupFailedMsg struct{ error }
type questionsMsg struct{ result *generate.Result }
type promptMsg struct {
	content    string
	refactored bool
}
type flowFailedMsg struct{ error }
type noticeMsg struct{ text string }
type libraryMsg struct {
	prompts []store.SavedPrompt
	err     error
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Feed the focused input first, so a printable key that also
		// triggers a view transition does not leak into the input that
		// gains focus afterwards.
		cmds = append(cmds, a.updateInputs(msg))
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case spinner.TickMsg:
		if a.view == viewProcessing {
			var cmd tea.Cmd
			a.state.spinner, cmd = a.state.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case providerReadyMsg:
		a.state.provider = msg.provider
		a.state.providerReady = true
		a.state.providerError = nil
		return a, nil

	case providerErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case keySavedMsg:
		if !config.Exists() {
			_ = a.state.config.Save()
		}
		if a.state.userStore != nil && a.state.user == nil {
			if u, err := a.state.userStore.Create(msg.name, ""); err == nil {
				a.state.user = u
			}
		}
		a.state.needsSetup = false
		a.state.setupStep = 0
		a.state.setupError = ""
		a.state.keyNameInput.Reset()
		a.state.keyValueInput.Reset()
		a.view = viewWelcome
		a.state.input.Focus()
		return a, tea.Batch(textinput.Blink, a.connectProvider())

	case setupFailedMsg:
		a.state.setupError = msg.Error()
		a.view = viewSetup
		a.state.keyValueInput.Focus()
		return a, textinput.Blink

	case questionsMsg:
		a.state.sess.SetQuestions(msg.result.Questions)
		a.state.fromFallback = msg.result.FromFallback
		a.view = viewQuestions
		a.goToQuestion(0)
		return a, textinput.Blink

	case promptMsg:
		a.state.result = msg.content
		a.state.resultIsRefactor = msg.refactored
		a.state.statusMsg = ""
		a.view = viewResult
		return a, nil

	case flowFailedMsg:
		a.state.lastError = msg.error
		a.view = viewError
		return a, nil

	case noticeMsg:
		a.state.statusMsg = msg.text
		return a, nil

	case libraryMsg:
		if msg.err != nil {
			a.state.statusMsg = msg.err.Error()
		} else {
			a.state.library = msg.prompts
			if a.state.libCursor >= len(msg.prompts) {
				a.state.libCursor = 0
			}
		}
		return a, nil
	}

	cmds = append(cmds, a.updateInputs(msg))
	return a, tea.Batch(cmds...)
}

// updateInputs routes a message to whichever text input the current view has
// focused.
func (a *App) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case a.view == viewSetup && a.state.setupStep == 0:
		var cmd tea.Cmd
		a.state.keyNameInput, cmd = a.state.keyNameInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewSetup && a.state.setupStep == 1:
		var cmd tea.Cmd
		a.state.keyValueInput, cmd = a.state.keyValueInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewWelcome:
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewQuestions && a.onHashtagStep() && a.state.tagTyping:
		var cmd tea.Cmd
		a.state.tagInput, cmd = a.state.tagInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewQuestions && !a.onHashtagStep() && a.currentQuestion().Kind == question.FreeText:
		var cmd tea.Cmd
		a.state.answerInput, cmd = a.state.answerInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewRefactor && a.state.refactorStep == 0:
		var cmd tea.Cmd
		a.state.refactorInput, cmd = a.state.refactorInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewRefactor && a.state.refactorStep == 1:
		var cmd tea.Cmd
		a.state.reasonInput, cmd = a.state.reasonInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewLibrary && a.state.searching:
		var cmd tea.Cmd
		a.state.searchInput, cmd = a.state.searchInput.Update(msg)
		cmds = append(cmds, cmd)
		if _, ok := msg.(tea.KeyMsg); ok {
			cmds = append(cmds, a.loadLibrary(strings.TrimSpace(a.state.searchInput.Value())))
		}
	}

	return tea.Batch(cmds...)
}

func (a *App) onHashtagStep() bool {
	return a.state.sess != nil && a.state.current >= len(a.state.sess.Questions)
}

func (a *App) currentQuestion() question.Question {
	return a.state.sess.Questions[a.state.current]
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	if key.Matches(msg, keys.Quit) {
		return a.handleEscape()
	}

	switch a.view {
	case viewWelcome:
		return a.handleWelcomeKey(msg)
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewQuestions:
		return a.handleQuestionsKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewRefactor:
		return a.handleRefactorKey(msg)
	case viewLibrary:
		return a.handleLibraryKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	}

	return nil
}

func (a *App) quit() tea.Cmd {
	if a.state.stopSweeper != nil {
		a.state.stopSweeper()
	}
	a.quitting = true
	return tea.Quit
}

func (a *App) handleEscape() tea.Cmd {
	s := a.state

	switch a.view {
	case viewWelcome:
		return a.quit()

	case viewSetup:
		if s.setupStep == 1 {
			s.setupStep = 0
			s.setupError = ""
			s.keyValueInput.Reset()
			s.keyValueInput.Blur()
			s.keyNameInput.Focus()
			return textinput.Blink
		}
		if s.needsSetup {
			return a.quit()
		}
		a.view = viewWelcome
		s.input.Focus()
		return textinput.Blink

	case viewQuestions:
		if s.tagTyping {
			s.tagTyping = false
			s.tagInput.Reset()
			s.tagInput.Blur()
			return nil
		}
		a.view = viewWelcome
		s.input.Focus()
		return textinput.Blink

	case viewProcessing:
		return nil

	case viewRefactor:
		if s.refactorStep == 1 {
			s.refactorStep = 0
			s.reasonInput.Blur()
			s.refactorInput.Focus()
			return textinput.Blink
		}
		a.view = viewWelcome
		s.input.Focus()
		return textinput.Blink

	case viewLibrary:
		if s.searching {
			s.searching = false
			s.searchInput.Reset()
			s.searchInput.Blur()
			return a.loadLibrary("")
		}
		a.view = viewWelcome
		s.input.Focus()
		return textinput.Blink

	default:
		a.view = viewWelcome
		s.input.Focus()
		return textinput.Blink
	}
}

func (a *App) handleWelcomeKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, keys.Enter) {
		return nil
	}

	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	// Slash commands
	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		a.state.input.Reset()
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
		case cmd == "/library" || cmd == "/l":
			a.view = viewLibrary
			a.state.libCursor = 0
			a.state.statusMsg = ""
			return a.loadLibrary("")
		case cmd == "/refactor" || cmd == "/r":
			a.view = viewRefactor
			a.state.refactorStep = 0
			a.state.statusMsg = ""
			a.state.refactorInput.Focus()
			return textinput.Blink
		case cmd == "/keys" || cmd == "/k":
			a.view = viewSetup
			a.state.setupStep = 0
			a.state.setupError = ""
			a.state.keyNameInput.Focus()
			return textinput.Blink
		case cmd == "/quit" || cmd == "/q":
			return a.quit()
		}
		return nil
	}

	if !a.state.providerReady {
		a.state.statusMsg = "Still connecting to the AI service..."
		if a.state.providerError != nil {
			a.state.statusMsg = "Not connected: " + a.state.providerError.Error()
		}
		return nil
	}

	a.state.sess = session.New(input)
	a.state.suggestedTags = hashtag.Suggest(input)
	a.state.statusMsg = ""
	a.state.loadingText = "Analyzing your idea..."
	a.view = viewProcessing
	return tea.Batch(a.state.spinner.Tick, a.generateQuestions(input))
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, keys.Enter) {
		return nil
	}

	s := a.state
	switch s.setupStep {
	case 0:
		s.setupStep = 1
		s.keyNameInput.Blur()
		s.keyValueInput.Focus()
		return textinput.Blink

	case 1:
		if s.keyStore == nil {
			s.setupError = "cannot store keys: " + s.storeError.Error()
			return nil
		}
		apiKey := strings.TrimSpace(s.keyValueInput.Value())
		if err := store.ValidateKeyFormat(apiKey); err != nil {
			s.setupError = err.Error()
			return nil
		}
		name := strings.TrimSpace(s.keyNameInput.Value())
		if name == "" {
			name = "default"
		}
		s.setupError = ""
		s.loadingText = "Testing your API key..."
		a.view = viewProcessing
		return tea.Batch(s.spinner.Tick, a.saveKey(name, apiKey))
	}

	return nil
}

func (a *App) handleQuestionsKey(msg tea.KeyMsg) tea.Cmd {
	if a.onHashtagStep() {
		return a.handleHashtagKey(msg)
	}

	s := a.state
	q := a.currentQuestion()

	switch {
	case key.Matches(msg, keys.Tab):
		a.goToQuestion(s.current + 1)
		return textinput.Blink

	case key.Matches(msg, keys.Prev):
		if s.current > 0 {
			a.goToQuestion(s.current - 1)
		}
		return textinput.Blink

	case key.Matches(msg, keys.Up):
		if s.choiceCursor > 0 {
			s.choiceCursor--
		}
		return nil

	case key.Matches(msg, keys.Down):
		limit := len(q.Choices)
		if q.Kind == question.MultiChoice {
			limit = len(q.MultiChoices)
		}
		if s.choiceCursor < limit-1 {
			s.choiceCursor++
		}
		return nil

	case key.Matches(msg, keys.Left):
		if q.Kind == question.NumericRange && s.rangeValue > q.RangeMin {
			s.rangeValue--
		}
		return nil

	case key.Matches(msg, keys.Right):
		if q.Kind == question.NumericRange && s.rangeValue < q.RangeMax {
			s.rangeValue++
		}
		return nil

	case key.Matches(msg, keys.Toggle) && q.Kind == question.MultiChoice:
		s.multiPicked[s.choiceCursor] = !s.multiPicked[s.choiceCursor]
		return nil

	case key.Matches(msg, keys.Enter):
		switch q.Kind {
		case question.SingleChoice:
			s.sess.Record(s.current, q.Choices[s.choiceCursor])
		case question.FreeText:
			s.sess.Record(s.current, strings.TrimSpace(s.answerInput.Value()))
		case question.NumericRange:
			s.sess.Record(s.current, strconv.Itoa(s.rangeValue))
		case question.MultiChoice:
			var picked []string
			for i, opt := range q.MultiChoices {
				if s.multiPicked[i] {
					picked = append(picked, opt)
				}
			}
			if len(picked) == 0 {
				s.statusMsg = "Select at least one option (space to toggle)"
				return nil
			}
			s.sess.Record(s.current, strings.Join(picked, ", "))
		}
		a.goToQuestion(s.current + 1)
		return textinput.Blink
	}

	return nil
}

func (a *App) handleHashtagKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	if s.tagTyping {
		if key.Matches(msg, keys.Enter) {
			tag := strings.TrimSpace(s.tagInput.Value())
			if tag != "" {
				s.sess.AddHashtag(tag)
			}
			s.tagTyping = false
			s.tagInput.Reset()
			s.tagInput.Blur()
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if s.tagCursor > 0 {
			s.tagCursor--
		}

	case key.Matches(msg, keys.Down):
		if s.tagCursor < len(s.suggestedTags)-1 {
			s.tagCursor++
		}

	case key.Matches(msg, keys.Toggle):
		if len(s.suggestedTags) == 0 {
			return nil
		}
		tag := s.suggestedTags[s.tagCursor]
		if a.tagChosen(tag) {
			s.sess.RemoveHashtag(tag)
		} else {
			s.sess.AddHashtag(tag)
		}

	case key.Matches(msg, keys.Prev):
		a.goToQuestion(len(s.sess.Questions) - 1)
		return textinput.Blink

	case msg.String() == "a":
		s.tagTyping = true
		s.tagInput.Focus()
		return textinput.Blink

	case key.Matches(msg, keys.Enter):
		if !s.sess.Complete() {
			s.statusMsg = "Answer every question before generating"
			return nil
		}
		s.statusMsg = ""
		s.loadingText = "Crafting your optimized prompt..."
		s.resultInput = s.sess.Input
		a.view = viewProcessing
		return tea.Batch(s.spinner.Tick, a.synthesize())
	}

	return nil
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch msg.String() {
	case "c":
		return a.copyResult()
	case "s":
		return a.savePrompt()
	case "e":
		return a.exportPrompt()
	case "r":
		a.view = viewRefactor
		s.refactorStep = 1
		s.refactorInput.SetValue(s.result)
		s.reasonInput.Reset()
		s.reasonInput.Focus()
		s.statusMsg = ""
		return textinput.Blink
	case "n":
		a.resetFlow()
		return textinput.Blink
	}

	return nil
}

func (a *App) resetFlow() {
	s := a.state
	s.sess = nil
	s.suggestedTags = nil
	s.fromFallback = false
	s.result = ""
	s.resultInput = ""
	s.resultIsRefactor = false
	s.statusMsg = ""
	s.input.Reset()
	s.input.Focus()
	a.view = viewWelcome
}

func (a *App) handleRefactorKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, keys.Enter) {
		return nil
	}

	s := a.state
	switch s.refactorStep {
	case 0:
		if strings.TrimSpace(s.refactorInput.Value()) == "" {
			return nil
		}
		s.refactorStep = 1
		s.refactorInput.Blur()
		s.reasonInput.Focus()
		return textinput.Blink

	case 1:
		original := strings.TrimSpace(s.refactorInput.Value())
		reason := strings.TrimSpace(s.reasonInput.Value())
		if reason == "" {
			s.statusMsg = "Say what should change"
			return nil
		}
		if !s.providerReady {
			s.statusMsg = "Still connecting to the AI service..."
			return nil
		}
		s.statusMsg = ""
		s.resultInput = original
		s.loadingText = "Refactoring your prompt..."
		a.view = viewProcessing
		return tea.Batch(s.spinner.Tick, a.refactor(original, reason))
	}

	return nil
}

func (a *App) handleLibraryKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	if s.searching {
		if key.Matches(msg, keys.Enter) {
			s.searching = false
			s.searchInput.Blur()
		}
		return nil
	}

	switch msg.String() {
	case "/":
		s.searching = true
		s.searchInput.Focus()
		return textinput.Blink
	case "up":
		if s.libCursor > 0 {
			s.libCursor--
		}
	case "down":
		if s.libCursor < len(s.library)-1 {
			s.libCursor++
		}
	case "c", "enter":
		if len(s.library) > 0 {
			content := s.library[s.libCursor].Content
			return func() tea.Msg {
				if err := clipboard.WriteAll(content); err != nil {
					return noticeMsg{"Copy failed: " + err.Error()}
				}
				return noticeMsg{"Copied to clipboard"}
			}
		}
	case "d":
		if len(s.library) > 0 {
			return a.deletePrompt(s.library[s.libCursor].ID)
		}
	}

	return nil
}

func (a *App) handleErrorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "n":
		a.resetFlow()
		return textinput.Blink
	case "k":
		a.view = viewSetup
		a.state.setupStep = 0
		a.state.setupError = ""
		a.state.keyNameInput.Focus()
		return textinput.Blink
	}
	return nil
}

// goToQuestion moves the cursor to question i (or the hashtag step when i is
// past the last question) and rebuilds the widget state from any answer
// already recorded.
func (a *App) goToQuestion(i int) {
	s := a.state
	s.current = i
	s.statusMsg = ""
	s.choiceCursor = 0
	s.multiPicked = map[int]bool{}
	s.answerInput.Reset()
	s.answerInput.Blur()

	if i >= len(s.sess.Questions) {
		s.tagCursor = 0
		return
	}

	q := s.sess.Questions[i]
	ans, answered := s.sess.Answer(i)

	switch q.Kind {
	case question.SingleChoice:
		if answered {
			for j, c := range q.Choices {
				if c == ans {
					s.choiceCursor = j
				}
			}
		}

	case question.FreeText:
		s.answerInput.Placeholder = "Type your answer..."
		if q.Placeholder != "" {
			s.answerInput.Placeholder = q.Placeholder
		}
		if answered {
			s.answerInput.SetValue(ans)
		}
		s.answerInput.Focus()

	case question.NumericRange:
		s.rangeValue = q.RangeDefault
		if answered {
			if v, err := strconv.Atoi(ans); err == nil {
				s.rangeValue = v
			}
		}

	case question.MultiChoice:
		if answered {
			chosen := map[string]bool{}
			for _, c := range strings.Split(ans, ", ") {
				chosen[c] = true
			}
			for j, opt := range q.MultiChoices {
				if chosen[opt] {
					s.multiPicked[j] = true
				}
			}
		}
	}
}

func (a *App) tagChosen(tag string) bool {
	for _, t := range a.state.sess.Hashtags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewSetup:
		return a.renderSetup()
	case viewQuestions:
		return a.renderQuestions()
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewRefactor:
		return a.renderRefactor()
	case viewLibrary:
		return a.renderLibrary()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderWelcome()
	}
}
