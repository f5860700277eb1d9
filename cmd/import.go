package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/db"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the content files into the sqlite database",
	Long:  `Loads the content YAML files and replaces the database content with them in one transaction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			dbPath = cfg.Database
		}
		if dbPath == "" {
			return fmt.Errorf("no database configured\nSet `database` in %s or pass --db", cfgFile)
		}

		page, err := content.LoadGlob(cfg.Content)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := content.NewSQLStore(database)
		ctx := context.Background()
		if err := store.Import(ctx, page); err != nil {
			return fmt.Errorf("importing content: %w", err)
		}

		count, err := store.SectionCount(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d sections into %s\n", count, dbPath)
		return nil
	},
}

func init() {
	importCmd.Flags().String("db", "", "database path (defaults to database from config)")
	rootCmd.AddCommand(importCmd)
}
