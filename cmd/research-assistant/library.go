// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-assistant/internal/cite"
	"github.com/pdiddy/research-assistant/internal/library"
	"github.com/pdiddy/research-assistant/internal/search"
	"github.com/pdiddy/research-assistant/pkg/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the saved-results library",
	Long: `Library stores search records in folders for later citation. The backend
is a local SQLite file by default; set library.backend to "redis" for a
shared deployment.`,
}

var libraryFoldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := library.Open(cmd.Context(), libraryConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		folders, err := store.Folders(cmd.Context())
		if err != nil {
			return err
		}
		if len(folders) == 0 {
			fmt.Fprintln(os.Stdout, "No folders.")
			return nil
		}
		for _, f := range folders {
			fmt.Fprintf(os.Stdout, "%s  %s  (created %s)\n", f.ID, f.Name, f.Created.Format("2006-01-02"))
		}
		return nil
	},
}

var libraryMkdirCmd = &cobra.Command{
	Use:   "mkdir <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := library.Open(cmd.Context(), libraryConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		f, err := store.CreateFolder(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Created folder %s (%s)\n", f.Name, f.ID)
		return nil
	},
}

var libraryRmdirCmd = &cobra.Command{
	Use:   "rmdir <folder-id>",
	Short: "Delete a folder (its items move to the root)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := library.Open(cmd.Context(), libraryConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		return store.DeleteFolder(cmd.Context(), args[0])
	},
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <session.yaml>",
	Short: "Save a session record into the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sf, err := search.ReadSessionFile(args[0])
		if err != nil {
			return err
		}

		rank, _ := cmd.Flags().GetInt("rank")
		if rank < 1 || rank > len(sf.Records) {
			return fmt.Errorf("rank %d out of range (session has %d records)", rank, len(sf.Records))
		}

		store, err := library.Open(cmd.Context(), libraryConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		item := types.FromRecord(sf.Records[rank-1])
		item.FolderID, _ = cmd.Flags().GetString("folder")

		saved, err := store.SaveItem(cmd.Context(), item)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved %q as %s\n", saved.Title, saved.ID)
		return nil
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items in a folder (root by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := library.Open(cmd.Context(), libraryConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		folderID, _ := cmd.Flags().GetString("folder")
		items, err := store.Items(cmd.Context(), folderID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(os.Stdout, "No items.")
			return nil
		}
		for _, it := range items {
			fmt.Fprintf(os.Stdout, "%s  %-50s  %-4s  %s\n",
				it.ID, truncateTitle(it.Title, 50), it.Year, it.URL)
		}
		return nil
	},
}

var libraryRmCmd = &cobra.Command{
	Use:   "rm <item-id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := library.Open(cmd.Context(), libraryConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		return store.DeleteItem(cmd.Context(), args[0])
	},
}

var libraryCiteCmd = &cobra.Command{
	Use:   "cite <item-id>",
	Short: "Print citations for a saved item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := library.Open(cmd.Context(), libraryConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		folderID, _ := cmd.Flags().GetString("folder")
		items, err := store.Items(cmd.Context(), folderID)
		if err != nil {
			return err
		}
		for _, it := range items {
			if it.ID != args[0] {
				continue
			}
			set := cite.Format(it.Record())
			for _, s := range cite.Styles {
				fmt.Fprintf(os.Stdout, "%-10s %s\n", s+":", set[s])
			}
			return nil
		}
		return fmt.Errorf("item %s: %w", args[0], library.ErrNotFound)
	},
}

func truncateTitle(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func init() {
	librarySaveCmd.Flags().Int("rank", 1, "record to save (1-based rank in the session)")
	librarySaveCmd.Flags().String("folder", "", "destination folder id (root if empty)")
	libraryListCmd.Flags().String("folder", "", "folder id to list (root if empty)")
	libraryCiteCmd.Flags().String("folder", "", "folder id to search (root if empty)")

	libraryCmd.AddCommand(libraryFoldersCmd, libraryMkdirCmd, libraryRmdirCmd,
		librarySaveCmd, libraryListCmd, libraryRmCmd, libraryCiteCmd)
	rootCmd.AddCommand(libraryCmd)
}
