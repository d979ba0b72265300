package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/kratvil/HES-HotelService/internal/config"
)

var (
	configPath    string
	migrationsDir string
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применяет SQL миграции к базе отеля",
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Выполняет все .sql файлы из каталога миграций по порядку",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}

		files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
		if err != nil {
			return fmt.Errorf("list migrations: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no .sql files in %s", migrationsDir)
		}
		sort.Strings(files)

		for _, file := range files {
			script, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			if _, err := db.Exec(string(script)); err != nil {
				return fmt.Errorf("apply %s: %w", filepath.Base(file), err)
			}
			fmt.Printf("applied %s\n", filepath.Base(file))
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "путь к конфигурации")
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "migrations", "каталог с миграциями")
	rootCmd.AddCommand(upCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
