package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tinypix/internal/registry"
	"github.com/vovakirdan/tinypix/internal/storage"
)

var (
	flagLimit   int
	flagID      int64
	flagSummary bool
	flagClear   bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [scene]",
	Short: "Show the session journal",
	Long: `Display recent runs, newest first. Without a scene every scene is listed.

Examples:
  tinypix sessions
  tinypix sessions walker --limit 5
  tinypix sessions --id 12
  tinypix sessions --summary
  tinypix sessions rain --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	sessionsCmd.Flags().Int64Var(&flagID, "id", 0, "Show a single session")
	sessionsCmd.Flags().BoolVar(&flagSummary, "summary", false, "Show per-scene totals")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the sessions of the given scene")
}

func runSessions(cmd *cobra.Command, args []string) error {
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
		if !registry.Exists(sceneID) {
			return fmt.Errorf("unknown scene %q, run 'tinypix list' to see available scenes", sceneID)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if sceneID == "" {
			return errors.New("--clear needs a scene")
		}
		if err := store.ClearSessions(sceneID); err != nil {
			return err
		}
		fmt.Printf("Cleared sessions for %s.\n", sceneID)
		return nil
	case flagID != 0:
		return showSession(store, flagID)
	case flagSummary:
		return showSummaries(store)
	}

	records, err := store.RecentSessions(sceneID, flagLimit)
	if err != nil {
		return err
	}

	heading := "Recent sessions"
	if sceneID != "" {
		heading += " - " + sceneID
	}
	fmt.Println(titleStyle.Render(heading))
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println(hintStyle.Render("Run 'tinypix run' to record the first one."))
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.SceneID,
			strconv.Itoa(r.FPS),
			strconv.Itoa(r.Frames),
			strconv.Itoa(r.Keys),
			r.Duration.Round(time.Second).String(),
			r.EndReason,
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	fmt.Print(table([]string{"ID", "Scene", "FPS", "Frames", "Keys", "Duration", "End", "Date"}, rows))
	return nil
}

func showSession(store *storage.Store, id int64) error {
	rec, err := store.SessionByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("session %d not found", id)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Session %d", rec.ID)))
	fmt.Println()
	fmt.Print(table([]string{"Field", "Value"}, [][]string{
		{"Scene", rec.SceneID},
		{"FPS", strconv.Itoa(rec.FPS)},
		{"Ticks", strconv.Itoa(rec.Ticks)},
		{"Frames", strconv.Itoa(rec.Frames)},
		{"Keys", strconv.Itoa(rec.Keys)},
		{"Duration", rec.Duration.String()},
		{"End", rec.EndReason},
		{"Date", rec.CreatedAt.Format("2006-01-02 15:04:05")},
	}))
	return nil
}

func showSummaries(store *storage.Store) error {
	sums, err := store.Summaries()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Sessions per scene"))
	fmt.Println()
	if len(sums) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, []string{
			s.SceneID,
			strconv.Itoa(s.Sessions),
			strconv.Itoa(s.Frames),
			s.Longest.Round(time.Second).String(),
		})
	}
	fmt.Print(table([]string{"Scene", "Sessions", "Frames", "Longest"}, rows))
	return nil
}
