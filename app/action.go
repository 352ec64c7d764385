package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/fitfusion/fusion/internal/catalog"
	"github.com/fitfusion/fusion/internal/config"
	"github.com/fitfusion/fusion/internal/nutrition"
	"github.com/fitfusion/fusion/internal/osutil"
	"github.com/fitfusion/fusion/internal/pathutil"
	"github.com/fitfusion/fusion/internal/timeutil"
	"github.com/fitfusion/fusion/internal/ui"
	"github.com/fitfusion/fusion/report"
	"github.com/fitfusion/fusion/stats"
	"github.com/fitfusion/fusion/store"
	"github.com/fitfusion/fusion/timer"
)

const (
	envNoColor       = "NO_COLOR"
	envFusionNoColor = "FUSION_NO_COLOR"
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

// loadConfig resolves the configuration for the running command from the
// config file, the environment and the command-line flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithPaths(
			pathutil.ConfigFilePath(),
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
		),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	level, err := config.ParseLogLevel(cfg.Settings.LogLevel)
	if err != nil {
		return nil, err
	}

	logLevel.Set(level)

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.DebugContext(
		ctx.Context,
		"configuration loaded",
		slog.String("user", cfg.User.ID),
		slog.String("config", cfg.System.ConfigPath),
	)

	return cfg, nil
}

// storeHelper loads the configuration and opens the workout store.
func storeHelper(ctx *cli.Context) (*config.Config, *store.Client, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}

// printJSON writes v to stdout as JSON.
func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, string(b))

	return nil
}

// defaultAction opens the workout stopwatch.
func defaultAction(ctx *cli.Context) error {
	cfg, db, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	t, err := timer.New(
		db,
		catalog.Default(),
		cfg,
		timer.WithExercise(ctx.String("exercise")),
	)
	if err != nil {
		return err
	}

	err = timer.Run(t)
	if err != nil {
		return err
	}

	for _, rec := range t.Logged() {
		report.WorkoutLogged(rec.Calories)
	}

	return nil
}

func catalogRows(cat *catalog.Catalog) [][]string {
	rows := [][]string{{"CATEGORY", "EXERCISE", "INTENSITY (MET)"}}

	for _, g := range cat.Groups() {
		for _, name := range g.Exercises {
			rows = append(rows, []string{
				string(g.Category),
				name,
				strconv.FormatFloat(cat.LookupIntensity(name), 'f', 1, 64),
			})
		}
	}

	return rows
}

// exercisesAction prints the exercise catalog.
func exercisesAction(_ *cli.Context) error {
	ui.PrintTable(catalogRows(catalog.Default()), config.Stdout)

	return nil
}

// statsAction prints daily active minutes and per-exercise totals.
func statsAction(ctx *cli.Context) error {
	cfg, db, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	c, err := db.Workouts(cfg.User.ID)
	if err != nil {
		return err
	}

	p := stats.Compute(c)

	if ctx.Bool("json") {
		return printJSON(p)
	}

	stats.Render(config.Stdout, p)

	return nil
}

// dateBounds converts the --since and --until flags to inclusive date keys.
func dateBounds(ctx *cli.Context) (since, until string, err error) {
	if s := ctx.String("since"); s != "" {
		t, err := timeutil.FromStr(s, time.Now())
		if err != nil {
			return "", "", err
		}

		since = timeutil.DateKey(t)
	}

	if s := ctx.String("until"); s != "" {
		t, err := timeutil.FromStr(s, time.Now())
		if err != nil {
			return "", "", err
		}

		until = timeutil.DateKey(t)
	}

	if since != "" && until != "" && since > until {
		return "", "", errInvalidDateRange.Fmt(since, until)
	}

	return since, until, nil
}

// listAction prints the workouts logged within a date range.
func listAction(ctx *cli.Context) error {
	since, until, err := dateBounds(ctx)
	if err != nil {
		return err
	}

	cfg, db, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	c, err := db.Workouts(cfg.User.ID)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(stats.FilterByDate(c, since, until))
	}

	stats.List(config.Stdout, c, since, until)

	return nil
}

// exportAction writes the workout history to a CSV report.
func exportAction(ctx *cli.Context) error {
	cfg, db, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	c, err := db.Workouts(cfg.User.ID)
	if err != nil {
		return err
	}

	content, err := report.ExportCSV(c)
	if err != nil {
		if errors.Is(err, report.ErrEmptyCollection) {
			report.Notice(err)
			return nil
		}

		return err
	}

	path, err := report.WriteFile(cfg.Report.Dir, content)
	if err != nil {
		return err
	}

	if ctx.Bool("verify") {
		err = verifyReport(path, len(c))
		if err != nil {
			return err
		}
	}

	report.Exported(path)

	return nil
}

// verifyReport reads a saved report back and checks its row count.
func verifyReport(path string, want int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close()

	got, err := report.ParseCSV(f)
	if err != nil {
		return err
	}

	if len(got) != want {
		return errReportMismatch.Fmt(path, len(got), want)
	}

	return nil
}

// serveAction serves the progress dashboard until interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, db, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	pterm.Info.Printfln(
		"serving progress for %s on http://localhost:%d",
		cfg.User.ID,
		cfg.Server.Port,
	)

	return stats.Serve(sigCtx, db, cfg.User.ID, cfg.Server.Port)
}

func nutritionRows(r nutrition.Result) [][]string {
	grams := func(f float64) string {
		return strconv.FormatFloat(f, 'f', 1, 64) + "g"
	}

	return [][]string{
		{"FOOD", "CALORIES", "PROTEIN", "CARBS", "FATS"},
		{
			r.FoodName,
			strconv.FormatFloat(r.Calories, 'f', 0, 64),
			grams(r.Protein),
			grams(r.Carbs),
			grams(r.Fats),
		},
	}
}

func recommendationText(rec nutrition.Recommendation) string {
	switch rec {
	case nutrition.Yes:
		return ui.Green(rec)
	case nutrition.No:
		return ui.Red(rec)
	default:
		return ui.Magenta(rec)
	}
}

// dietAction asks the diet assistant whether a food suits a workout diet.
func dietAction(ctx *cli.Context) error {
	query := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if query == "" {
		return nutrition.ErrEmptyQuery
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.Nutrition.APIKey == "" {
		return errMissingAPIKey
	}

	client := nutrition.New(
		cfg.Nutrition.Endpoint,
		cfg.Nutrition.Model,
		cfg.Nutrition.APIKey,
	)

	spinner, _ := pterm.DefaultSpinner.Start("Asking the diet assistant...")

	res, err := client.Lookup(ctx.Context, query)
	if err != nil {
		_ = spinner.Stop()
		return err
	}

	_ = spinner.Stop()

	fmt.Fprintf(
		config.Stdout,
		"%s %s\n%s\n\n",
		ui.Highlight("Recommended:"),
		recommendationText(res.Recommendation),
		res.Explanation,
	)

	ui.PrintTable(nutritionRows(res), config.Stdout)

	return nil
}

// profileAction prints the stored profile or updates it from the flags.
func profileAction(ctx *cli.Context) error {
	cfg, db, err := storeHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if !ctx.IsSet("name") && !ctx.IsSet("age") {
		p, err := db.Profile(cfg.User.ID)
		if err != nil {
			return err
		}

		fmt.Fprintf(config.Stdout, "%s %s\n", ui.Highlight("Name:"), p.Name)
		fmt.Fprintf(config.Stdout, "%s %d\n", ui.Highlight("Age:"), p.Age)

		return nil
	}

	p, err := db.Profile(cfg.User.ID)
	if err != nil && !errors.Is(err, store.ErrProfileNotFound) {
		return err
	}

	if ctx.IsSet("name") {
		p.Name = strings.TrimSpace(ctx.String("name"))
	}

	if ctx.IsSet("age") {
		if ctx.Int("age") < 0 {
			return errInvalidAge.Fmt(ctx.Int("age"))
		}

		p.Age = ctx.Int("age")
	}

	err = db.SaveProfile(cfg.User.ID, p)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("profile saved for %s", cfg.User.ID)

	return nil
}

// editConfigAction handles the edit-config command which opens the fusion
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if FUSION_NO_COLOR is set
	if _, exists := os.LookupEnv(envFusionNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	setupLogger(pathutil.LogFilePath())

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting fusion")

	return closeLogger()
}
