package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hollefeld/presetdeck/internal/config"
	"github.com/hollefeld/presetdeck/internal/host"
	"github.com/hollefeld/presetdeck/internal/logging"
	"github.com/hollefeld/presetdeck/internal/organizer"
	"github.com/hollefeld/presetdeck/internal/sidecar"
	"github.com/hollefeld/presetdeck/internal/tui"
	"github.com/hollefeld/presetdeck/internal/util"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "presetdeck",
		Short: "A TUI organizer for host-owned preset lists",
		Long: `presetdeck - Organize a host application's flat preset list into folders,
favorites and filtered views directly in your terminal. The presets themselves
stay on the host; presetdeck only keeps organizational metadata locally.`,
		RunE: runTUI,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [folder-path]",
		Short: "Launch the TUI, optionally inside a folder",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	browseCmd.Flags().Bool("plain", false, "List the folder in plain text instead of launching the TUI")
	browseCmd.Flags().Bool("json", false, "List the folder as JSON instead of launching the TUI")
	browseCmd.Flags().Bool("name-only", false, "Only print names in non-TUI output")

	listCmd := &cobra.Command{
		Use:   "ls [folder-path]",
		Short: "List one folder of the organizer tree in plain text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runList,
	}
	listCmd.Flags().Bool("json", false, "Output JSON")
	listCmd.Flags().Bool("name-only", false, "Only print names")
	listCmd.Flags().String("sort", "name-asc", "Sort mode (name-asc, name-desc, date-asc, date-desc)")
	listCmd.Flags().String("filter", "all", "Filter mode (all, favorites, uncategorized, has-image)")

	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "Print the favorites registry in stored order",
		RunE:  runFavorites,
	}
	favoritesCmd.Flags().Bool("all", false, "Include favorites that no longer resolve on the host")
	favoritesCmd.Flags().Bool("json", false, "Output JSON")

	gcCmd := &cobra.Command{
		Use:   "gc",
		Short: "Prune metadata and favorites for presets gone from the host",
		RunE:  runGC,
	}
	gcCmd.Flags().Bool("dry-run", false, "Report what would be pruned without writing")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show sidecar statistics",
		RunE:  runStats,
	}
	statsCmd.Flags().Bool("json", false, "Output JSON")

	rootCmd.AddCommand(browseCmd, listCmd, favoritesCmd, gcCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	plainMode, _ := cmd.Flags().GetBool("plain")
	jsonMode, _ := cmd.Flags().GetBool("json")
	if plainMode || jsonMode {
		return runList(cmd, args)
	}

	if !isInteractiveTerminal() {
		return runList(cmd, args)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The TUI owns stdout, so interactive runs log to a file.
	log := logging.NewFileLogger(cfg.DataDir, cfg.LogLevel)

	store, err := sidecar.Open(cfg.DBPath(), log)
	if err != nil {
		return fmt.Errorf("opening sidecar: %w", err)
	}
	defer store.Close()

	c := host.New(cfg.BaseURL, cfg.RequestsPerSecond)
	session := organizer.NewSession(store, log)

	return tui.Run(c, session, cfg, log)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, session, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	c := host.New(cfg.BaseURL, cfg.RequestsPerSecond)
	presets, err := c.ListPresets(context.Background(), cfg.Family)
	if err != nil {
		return fmt.Errorf("listing host presets: %w", err)
	}
	session.SetPresets(presets)

	folderPath := ""
	if len(args) > 0 {
		folderPath = args[0]
	}
	folderID, err := resolveFolderPath(session, folderPath)
	if err != nil {
		return err
	}

	view := organizer.NewView()
	if sortFlag, _ := cmd.Flags().GetString("sort"); sortFlag != "" {
		view.Sort = organizer.SortMode(sortFlag)
	}
	if filterFlag, _ := cmd.Flags().GetString("filter"); filterFlag != "" {
		view.Filter = organizer.FilterMode(filterFlag)
	}
	items := view.Apply(session.ListChildren(folderID), session.Favorites().Contains)

	jsonMode, _ := cmd.Flags().GetBool("json")
	nameOnly, _ := cmd.Flags().GetBool("name-only")
	if jsonMode {
		type itemOut struct {
			Name     string `json:"name"`
			Kind     string `json:"kind"`
			Ref      string `json:"ref,omitempty"`
			Modified string `json:"modified,omitempty"`
			Color    string `json:"color,omitempty"`
			HasImage bool   `json:"has_image,omitempty"`
			Favorite bool   `json:"favorite,omitempty"`
		}
		out := struct {
			Path  string    `json:"path"`
			Items []itemOut `json:"items"`
		}{
			Path:  "/" + strings.Trim(folderPath, "/"),
			Items: make([]itemOut, 0, len(items)),
		}
		for _, it := range items {
			kind := "preset"
			if it.Kind == organizer.KindFolder {
				kind = "folder"
			}
			out.Items = append(out.Items, itemOut{
				Name:     it.Name,
				Kind:     kind,
				Ref:      it.Ref,
				Modified: util.ShortDate(it.LastModified),
				Color:    it.Color,
				HasImage: it.HasImage(),
				Favorite: it.Kind == organizer.KindPreset && session.Favorites().Contains(it.Name),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if folderPath == "" {
		fmt.Println("/")
	} else {
		fmt.Printf("/%s\n", strings.Trim(folderPath, "/"))
	}
	for _, it := range items {
		if nameOnly {
			if it.Kind == organizer.KindFolder {
				fmt.Printf("%s/\n", it.Name)
			} else {
				fmt.Println(it.Name)
			}
			continue
		}
		kind := "P"
		if it.Kind == organizer.KindFolder {
			kind = "D"
		}
		star := " "
		if it.Kind == organizer.KindPreset && session.Favorites().Contains(it.Name) {
			star = "*"
		}
		fmt.Printf("%s%s\t%-12s\t%s\n", kind, star, util.ShortDate(it.LastModified), it.Name)
	}
	return nil
}

func runFavorites(cmd *cobra.Command, args []string) error {
	cfg, session, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	all, _ := cmd.Flags().GetBool("all")
	names := session.Favorites().List()

	if !all {
		c := host.New(cfg.BaseURL, cfg.RequestsPerSecond)
		presets, err := c.ListPresets(context.Background(), cfg.Family)
		if err != nil {
			return fmt.Errorf("listing host presets: %w", err)
		}
		live := make(map[string]struct{}, len(presets))
		for _, p := range presets {
			live[p.Name] = struct{}{}
		}
		resolved := names[:0]
		for _, n := range names {
			if _, ok := live[n]; ok {
				resolved = append(resolved, n)
			}
		}
		names = resolved
	}

	jsonMode, _ := cmd.Flags().GetBool("json")
	if jsonMode {
		out := struct {
			Count     int      `json:"count"`
			Favorites []string `json:"favorites"`
		}{Count: len(names), Favorites: names}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func runGC(cmd *cobra.Command, args []string) error {
	cfg, session, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	c := host.New(cfg.BaseURL, cfg.RequestsPerSecond)
	presets, err := c.ListPresets(context.Background(), cfg.Family)
	if err != nil {
		return fmt.Errorf("listing host presets: %w", err)
	}
	session.SetPresets(presets)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		live := make(map[string]struct{}, len(presets))
		for _, p := range presets {
			live[p.Name] = struct{}{}
		}
		orphanMeta := len(orphanNames(session, live))
		orphanFavs := 0
		for _, n := range session.Favorites().List() {
			if _, ok := live[n]; !ok {
				orphanFavs++
			}
		}
		fmt.Printf("Would prune %d metadata record(s) and %d favorite(s)\n", orphanMeta, orphanFavs)
		return nil
	}

	metaRemoved, favRemoved := session.PruneOrphans()
	fmt.Printf("Pruned %d metadata record(s) and %d favorite(s)\n", metaRemoved, favRemoved)
	return nil
}

// orphanNames lists metadata records whose preset is gone from the host,
// without mutating anything.
func orphanNames(session *organizer.Session, live map[string]struct{}) []string {
	var names []string
	for _, name := range session.MetaNames() {
		if _, ok := live[name]; !ok {
			names = append(names, name)
		}
	}
	return names
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, session, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	jsonMode, _ := cmd.Flags().GetBool("json")
	if jsonMode {
		out := struct {
			Folders   int    `json:"folders"`
			Presets   int    `json:"preset_metadata"`
			Favorites int    `json:"favorites"`
			Database  string `json:"database"`
		}{
			Folders:   session.FolderCount(),
			Presets:   session.MetaCount(),
			Favorites: session.Favorites().Len(),
			Database:  cfg.DBPath(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Sidecar Statistics:\n")
	fmt.Printf("  Folders:          %d\n", session.FolderCount())
	fmt.Printf("  Preset metadata:  %d\n", session.MetaCount())
	fmt.Printf("  Favorites:        %d\n", session.Favorites().Len())
	fmt.Printf("  Database:         %s\n", cfg.DBPath())

	return nil
}

// openSession loads config and opens the sidecar-backed session for a plain
// CLI command. The returned cleanup closes the store.
func openSession() (*config.Config, *organizer.Session, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logging.NewStderrLogger(cfg.LogLevel)

	store, err := sidecar.Open(cfg.DBPath(), log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening sidecar: %w", err)
	}

	session := organizer.NewSession(store, log)
	return cfg, session, func() { store.Close() }, nil
}

// resolveFolderPath walks a slash-separated trail of folder names from root,
// matching each segment case-insensitively among the children of the current
// folder.
func resolveFolderPath(session *organizer.Session, folderPath string) (string, error) {
	current := sidecar.RootID
	trimmed := strings.Trim(strings.TrimSpace(folderPath), "/")
	if trimmed == "" {
		return current, nil
	}

	for _, segment := range strings.Split(trimmed, "/") {
		// Duplicate names resolve deterministically: oldest folder wins.
		found := ""
		var foundItem organizer.Item
		for _, it := range session.ListChildren(current) {
			if it.Kind != organizer.KindFolder || !strings.EqualFold(it.Name, segment) {
				continue
			}
			if found == "" || it.CreatedAt.Before(foundItem.CreatedAt) ||
				(it.CreatedAt.Equal(foundItem.CreatedAt) && it.ID < foundItem.ID) {
				found = it.ID
				foundItem = it
			}
		}
		if found == "" {
			return "", fmt.Errorf("folder %q not found in path %q", segment, folderPath)
		}
		current = found
	}
	return current, nil
}

func isInteractiveTerminal() bool {
	inInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	outInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (inInfo.Mode()&os.ModeCharDevice) != 0 && (outInfo.Mode()&os.ModeCharDevice) != 0
}
