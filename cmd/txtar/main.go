package main

import (
	"fmt"
	"log"
	"os"

	"txtar"
	"txtar/internal/bundler"
	"txtar/internal/config"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "txtar",
		Short: "Pack, inspect and unpack human-editable text archives",
	}
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".txtar.yaml", "Path to the config file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(fmtCmd)
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

var (
	longListing bool

	listCmd = &cobra.Command{
		Use:   "list <archive>",
		Short: "List the files in an archive",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := txtar.Load(args[0])
			if err != nil {
				log.Fatalf("Failed to load archive: %v", err)
			}
			for _, f := range a.Files {
				if longListing {
					fmt.Printf("%8d  %s\n", len(f.Data), f.Name)
				} else {
					fmt.Println(f.Name)
				}
			}
		},
	}
)

var catCmd = &cobra.Command{
	Use:   "cat <archive> <name>",
	Short: "Print the contents of one file in an archive",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := txtar.Load(args[0])
		if err != nil {
			log.Fatalf("Failed to load archive: %v", err)
		}
		f, ok := a.Get(args[1])
		if !ok {
			log.Fatalf("Archive doesn't contain file: %s", args[1])
		}
		fmt.Print(f.Data)
	},
}

var (
	extractDir string

	extractCmd = &cobra.Command{
		Use:   "extract <archive>",
		Short: "Extract an archive into a directory tree",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			dir := extractDir
			if dir == "" {
				dir = cfg.Output.Dir
			}

			a, err := txtar.Load(args[0])
			if err != nil {
				log.Fatalf("Failed to load archive: %v", err)
			}
			if err := bundler.Extract(a, dir); err != nil {
				log.Fatalf("Extraction failed: %v", err)
			}
			fmt.Printf("✅ Extracted %d files into %s\n", len(a.Files), dir)
		},
	}
)

var (
	createOut     string
	createComment string

	createCmd = &cobra.Command{
		Use:   "create <dir>",
		Short: "Pack a directory tree into an archive",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()

			b := bundler.New(cfg.Ignore)
			a, err := b.Pack(args[0])
			if err != nil {
				log.Fatalf("Packing failed: %v", err)
			}
			a.Comment = createComment

			out := txtar.Format(a)
			if createOut == "" {
				os.Stdout.Write(out)
				return
			}
			if err := os.WriteFile(createOut, out, 0o644); err != nil {
				log.Fatalf("Failed to write archive: %v", err)
			}
			fmt.Printf("✅ Packed %d files into %s\n", len(a.Files), createOut)
		},
	}
)

var (
	fmtInPlace bool

	fmtCmd = &cobra.Command{
		Use:   "fmt <archive>",
		Short: "Reformat an archive (normalizes markers and trailing newlines)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := txtar.Load(args[0])
			if err != nil {
				log.Fatalf("Failed to load archive: %v", err)
			}
			out := txtar.Format(a)
			if !fmtInPlace {
				os.Stdout.Write(out)
				return
			}
			if err := os.WriteFile(args[0], out, 0o644); err != nil {
				log.Fatalf("Failed to write archive: %v", err)
			}
		},
	}
)

func init() {
	listCmd.Flags().BoolVarP(&longListing, "long", "l", false, "Show file sizes")
	extractCmd.Flags().StringVarP(&extractDir, "dir", "C", "", "Directory to extract into (overrides config)")
	createCmd.Flags().StringVarP(&createOut, "output", "o", "", "Write the archive to a file instead of stdout")
	createCmd.Flags().StringVarP(&createComment, "comment", "m", "", "Leading comment for the archive")
	fmtCmd.Flags().BoolVarP(&fmtInPlace, "write", "w", false, "Rewrite the archive in place")
}
