package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/digit-span/internal/config"
	"github.com/ytget/digit-span/internal/game"
	"github.com/ytget/digit-span/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	app        fyne.App
	controller *game.Controller
	settings   *config.Settings
	theme      *DigitSpanTheme

	// Surfaces recolored on theme or cue changes
	background *canvas.LinearGradient
	card       *canvas.Rectangle

	themeBtn  *widget.Button
	setSelect *widget.Select
	startBtn  *widget.Button
	idlePanel *fyne.Container

	messageLabel *widget.Label
	sequenceText *canvas.Text
	inputEntry   *widget.Entry
	submitBtn    *widget.Button
	resetBtn     *widget.Button
	inputPanel   *fyne.Container
	activePanel  *fyne.Container

	scoreLabel *widget.Label
	levelLabel *widget.Label

	// last rendered round, used to clear the entry when a new round starts
	lastRound int
	lastSnap  game.Snapshot
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller *game.Controller, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:     window,
		app:        app,
		controller: controller,
		settings:   settings,
	}

	ui.setupUI()
	ui.applyTheme(settings.GetTheme())

	// Controller timers fire off the UI goroutine
	controller.SetUpdateCallback(func(snap game.Snapshot) {
		fyne.Do(func() {
			ui.render(snap)
		})
	})
	ui.render(controller.Snapshot())

	log.Printf("RootUI initialized with theme %s", settings.GetTheme())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.window.SetTitle(AppTitle)

	// Header with title and theme toggle
	title := widget.NewLabelWithStyle(AppTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText
	ui.themeBtn = widget.NewButton(IconMoon, ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, nil, ui.themeBtn, title)

	// Idle panel: description, set selector and start button
	ui.setSelect = widget.NewSelect(ui.controller.SetNames(), ui.onSetSelected)
	ui.setSelect.PlaceHolder = SetPlaceholder
	ui.startBtn = widget.NewButton(StartLabel, ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.idlePanel = container.NewVBox(
		ui.createWelcomeBox(),
		ui.setSelect,
		ui.startBtn,
	)

	// Active panel: sequence, input and actions
	ui.messageLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.messageLabel.Wrapping = fyne.TextWrapWord

	ui.sequenceText = canvas.NewText("", theme.Color(theme.ColorNamePrimary))
	ui.sequenceText.TextSize = SequenceTextSize
	ui.sequenceText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	ui.sequenceText.Alignment = fyne.TextAlignCenter

	ui.inputEntry = widget.NewEntry()
	ui.inputEntry.SetPlaceHolder(InputPlaceholder)
	ui.inputEntry.Validator = validateSequenceFormat
	ui.inputEntry.OnChanged = ui.controller.SetInput
	// Submit when user presses Enter in the answer field
	ui.inputEntry.OnSubmitted = ui.onEnterPressed

	ui.submitBtn = widget.NewButton(SubmitLabel, ui.onSubmitClick)
	ui.submitBtn.Importance = widget.HighImportance
	ui.resetBtn = widget.NewButton(ResetLabel, ui.onResetClick)

	entryRow := container.NewGridWrap(fyne.NewSize(EntryMinWidth, ui.inputEntry.MinSize().Height), ui.inputEntry)
	ui.inputPanel = container.NewVBox(
		container.NewCenter(entryRow),
		container.NewCenter(ui.submitBtn),
	)
	ui.activePanel = container.NewVBox(
		ui.sequenceText,
		ui.inputPanel,
		container.NewCenter(ui.resetBtn),
	)

	// Footer with score and level
	ui.scoreLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.levelLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	footer := container.NewGridWithColumns(2, ui.scoreLabel, ui.levelLabel)

	body := container.NewVBox(
		header,
		widget.NewSeparator(),
		ui.messageLabel,
		ui.idlePanel,
		ui.activePanel,
		layout.NewSpacer(),
		widget.NewSeparator(),
		footer,
	)

	ui.card = canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	ui.card.CornerRadius = CardCornerRadius
	cardContent := container.New(layout.NewCustomPaddedLayout(CardPadding, CardPadding, CardPadding, CardPadding), body)

	ui.background = canvas.NewLinearGradient(theme.Color(theme.ColorNameBackground), theme.Color(theme.ColorNameBackground), 135)

	content := container.NewStack(
		ui.background,
		container.NewPadded(container.NewStack(ui.card, cardContent)),
	)
	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createWelcomeBox builds the description shown before a session starts
func (ui *RootUI) createWelcomeBox() fyne.CanvasObject {
	heading := widget.NewLabelWithStyle(WelcomeHeading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	heading.SizeName = theme.SizeNameSubHeadingText
	heading.Importance = widget.HighImportance

	body := widget.NewLabel(WelcomeBody)
	body.Wrapping = fyne.TextWrapWord

	footer := widget.NewLabelWithStyle(WelcomeFooter, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	footer.Wrapping = fyne.TextWrapWord

	return container.NewVBox(heading, body, footer)
}

// validateSequenceFormat flags input that is not digit-hyphen formatted.
// It only drives the entry hint; answers are graded by exact comparison.
func validateSequenceFormat(input string) error {
	if input == "" {
		return nil
	}
	if _, err := model.ParseSequence(input); err != nil {
		return fmt.Errorf("%s: %w", InputFormatHint, err)
	}
	return nil
}

// onSetSelected records the chosen set
func (ui *RootUI) onSetSelected(name string) {
	if err := ui.controller.SelectSet(name); err != nil {
		log.Printf("Cannot select set %q: %v", name, err)
	}
}

// onStartClick handles the start button click
func (ui *RootUI) onStartClick() {
	err := ui.controller.Start()
	switch {
	case err == nil:
		return
	case errors.Is(err, game.ErrNoSetSelected):
		dialog.ShowInformation(ValidationTitle, game.MsgSelectSet, ui.window)
	default:
		log.Printf("Cannot start session: %v", err)
	}
}

// onSubmitClick handles the submit button click
func (ui *RootUI) onSubmitClick() {
	if _, err := ui.controller.Submit(ui.inputEntry.Text); err != nil {
		log.Printf("Submit ignored: %v", err)
	}
}

// onEnterPressed submits from the keyboard while an answer is expected
func (ui *RootUI) onEnterPressed(text string) {
	ui.controller.SubmitOnEnter(text)
}

// onResetClick handles the reset button click
func (ui *RootUI) onResetClick() {
	ui.controller.Restart()
}

// onToggleTheme flips and persists the theme
func (ui *RootUI) onToggleTheme() {
	ui.applyTheme(ui.settings.ToggleTheme())
}

// applyTheme installs the theme for a preference and recolors custom surfaces
func (ui *RootUI) applyTheme(pref config.ThemePreference) {
	ui.theme = NewDigitSpanTheme(pref.Variant())
	ui.app.Settings().SetTheme(ui.theme)

	ui.background.StartColor = ui.theme.Color(ColorNameGradientStart, ui.theme.Variant())
	ui.background.EndColor = ui.theme.Color(ColorNameGradientEnd, ui.theme.Variant())
	ui.background.Refresh()

	ui.sequenceText.Color = ui.theme.Color(theme.ColorNamePrimary, ui.theme.Variant())
	ui.sequenceText.Refresh()

	if pref == config.ThemeDark {
		ui.themeBtn.SetText(IconSun)
	} else {
		ui.themeBtn.SetText(IconMoon)
	}
	ui.renderCue(ui.lastSnap.Cue)
}

// render updates every widget from a controller snapshot
func (ui *RootUI) render(snap game.Snapshot) {
	// A timer callback queued before a restart can land after it
	if snap.Seq < ui.lastSnap.Seq {
		log.Printf("Dropping stale snapshot seq=%d phase=%s (last seq=%d)", snap.Seq, snap.Phase, ui.lastSnap.Seq)
		return
	}
	ui.lastSnap = snap

	ui.messageLabel.SetText(snap.Message)
	ui.scoreLabel.SetText(fmt.Sprintf(ScoreFormat, snap.Score))
	ui.levelLabel.SetText(fmt.Sprintf(LevelFormat, snap.Level))
	ui.renderCue(snap.Cue)

	if snap.Phase == model.PhaseIdle {
		ui.idlePanel.Show()
		ui.activePanel.Hide()
		ui.lastRound = 0
		ui.inputEntry.SetText("")
		return
	}

	ui.idlePanel.Hide()
	ui.activePanel.Show()

	if snap.Round != ui.lastRound {
		ui.lastRound = snap.Round
		ui.inputEntry.SetText("")
	}

	ui.sequenceText.Text = snap.Digits
	ui.sequenceText.Refresh()
	if snap.Phase == model.PhaseDisplaying {
		ui.sequenceText.Show()
	} else {
		ui.sequenceText.Hide()
	}

	switch snap.Phase {
	case model.PhaseAwaitingInput:
		ui.inputPanel.Show()
		ui.inputEntry.Enable()
		ui.submitBtn.Enable()
		ui.window.Canvas().Focus(ui.inputEntry)
	case model.PhaseResolvedSuccess, model.PhaseResolvedFailure:
		ui.inputPanel.Show()
		ui.inputEntry.Disable()
		ui.submitBtn.Disable()
	default:
		ui.inputPanel.Hide()
	}
}

// renderCue colors the card for success and failure
func (ui *RootUI) renderCue(cue model.Cue) {
	if ui.card == nil || ui.theme == nil {
		return
	}
	ui.card.FillColor = ui.theme.CueColor(cue)
	ui.card.Refresh()
}
