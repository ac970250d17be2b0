package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/logging"
	"github.com/ayoisaiah/breathe/internal/notify"
	"github.com/ayoisaiah/breathe/internal/osutil"
	"github.com/ayoisaiah/breathe/internal/pathutil"
	"github.com/ayoisaiah/breathe/internal/session"
	"github.com/ayoisaiah/breathe/internal/sound"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/internal/ui"
	"github.com/ayoisaiah/breathe/timer"
)

const (
	envUpdateNotifier = "BREATHE_UPDATE_NOTIFIER"
	envNoColor        = "NO_COLOR"
	envBreatheNoColor = "BREATHE_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of Breathe from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/breathe/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/breathe/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of breathe is available: %s at %s", version, resp.Request.URL.String())
	}
}

// loadConfig resolves the application paths and layers the configuration
// file, the environment and the command-line flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	return config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// newPlayer loads the configured cue files. The player is built even when
// sound is disabled so that the settings form can turn cues on later; the
// audio device is only opened by the first cue.
func newPlayer(cfg *config.Config) (*sound.Player, error) {
	var opts []sound.Option

	for cue, path := range cfg.CuePaths() {
		opts = append(opts, sound.WithCueFile(cue, path))
	}

	return sound.New(opts...)
}

// newController builds the session controller on top of a mute switch.
// Whether a cue plays is decided by the session settings and the switch.
func newController(
	cfg *config.Config,
	emitter session.Emitter,
	logger *slog.Logger,
) (*session.Controller, *timer.Muter) {
	muter := timer.NewMuter(emitter)

	return session.NewController(
		cfg.SessionSettings(),
		muter,
		session.WithLogger(logger),
	), muter
}

// defaultAction starts a breathing session, interactively or in plain mode.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(logging.Options{
		Path:  pathutil.LogFilePath(),
		Debug: cfg.CLI.Debug,
	})
	if err != nil {
		return err
	}

	defer logCloser.Close()

	slog.SetDefault(logger)

	player, err := newPlayer(cfg)
	if err != nil {
		return err
	}

	defer player.Close()

	ctrl, muter := newController(cfg, player, logger)
	notifier := notify.New(cfg.Notifications.Enabled, cfg.Settings.CompleteCmd)

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting breathe",
		slog.Bool("plain", cfg.CLI.Plain),
		slog.Int("rounds", cfg.Breathing.Rounds),
	)

	if cfg.CLI.Plain {
		p := &timer.Plain{
			Out:      config.Stdout,
			Notifier: notifier,
			Log:      logger,
		}

		return p.Run(sigCtx, ctrl)
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	t := timer.New(sigCtx, ctrl, timer.Options{
		Notifier: notifier,
		Muter:    muter,
		Log:      logger,
		Style: ui.NewStyle(ui.PhaseColors{
			Inhale: cfg.Display.InhaleColor,
			Exhale: cfg.Display.ExhaleColor,
			Hold:   cfg.Display.HoldColor,
		}, cfg.Display.DarkTheme),
		Debug: cfg.CLI.Debug,
	})

	_, err = tea.NewProgram(t, tea.WithContext(sigCtx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

// planRows describes each round of a session as table rows, followed by the
// total length of the session.
func planRows(s session.Settings) [][]string {
	data := [][]string{
		{"ROUND", "BREATHS", "HOLD", "DURATION"},
	}

	var total int

	for round := 1; round <= s.TotalRounds; round++ {
		d := s.RoundDuration(round)
		total += d

		data = append(data, []string{
			strconv.Itoa(round),
			strconv.Itoa(s.BreathsPerRound),
			timeutil.FormatClock(s.HoldTarget(round)),
			timeutil.FormatClock(d),
		})
	}

	data = append(data, []string{"TOTAL", "", "", timeutil.FormatClock(total)})

	return data
}

// planAction prints the rounds of the configured session.
func planAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	return ui.PrintTable(planRows(cfg.SessionSettings()), config.Stdout)
}

// soundFiles returns the names of the supported sound files in dir in natural
// sort order. A missing directory has no files.
func soundFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() || !sound.SupportedFile(e.Name()) {
			continue
		}

		names = append(names, e.Name())
	}

	sort.Sort(natural.StringSlice(names))

	return names, nil
}

// printTones lists the tone presets and the custom sound files in dir.
func printTones(w io.Writer, dir string) error {
	files, err := soundFiles(dir)
	if err != nil {
		return err
	}

	data := [][]string{{"NAME", "SOURCE"}}

	for _, tone := range session.Tones {
		data = append(data, []string{string(tone), "preset"})
	}

	for _, f := range files {
		data = append(data, []string{f, filepath.Join(dir, f)})
	}

	return ui.PrintTable(data, w)
}

// tonesAction handles the tones command.
func tonesAction(_ *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return printTones(config.Stdout, pathutil.SoundDir())
}

// editConfigAction handles the edit-config command which opens the breathe
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/breathe/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if BREATHE_NO_COLOR is set
	if _, exists := os.LookupEnv(envBreatheNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
