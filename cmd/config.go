/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nakachan-ing/dayspark/internal/model"
	"github.com/nakachan-ing/dayspark/internal/store"
	"github.com/nakachan-ing/dayspark/internal/util"
)

func stringField(label string, p *string) editorField {
	return editorField{
		label: label,
		get:   func() string { return *p },
		set: func(v string) error {
			*p = v
			return nil
		},
	}
}

func intField(label string, p *int) editorField {
	return editorField{
		label: label,
		get:   func() string { return strconv.Itoa(*p) },
		set: func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s must be a number", label)
			}
			*p = n
			return nil
		},
	}
}

func boolField(label string, p *bool) editorField {
	return editorField{
		label: label,
		get:   func() string { return strconv.FormatBool(*p) },
		set: func(v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s must be true or false", label)
			}
			*p = b
			return nil
		},
	}
}

func configFields(config *model.Config) []editorField {
	engine := stringField("Store.Engine", &config.Store.Engine)
	engineSet := engine.set
	engine.set = func(v string) error {
		switch strings.ToLower(v) {
		case store.EngineJSON, store.EngineSQLite, store.EngineRedis, store.EngineMemory:
			return engineSet(strings.ToLower(v))
		}
		return fmt.Errorf("unknown engine %q (json, sqlite, redis, memory)", v)
	}

	backupTime := stringField("Backup.Time", &config.Backup.Time)
	backupTimeSet := backupTime.set
	backupTime.set = func(v string) error {
		if _, _, err := util.ParseClock(v); err != nil {
			return err
		}
		return backupTimeSet(v)
	}

	return []editorField{
		stringField("DataDir", &config.DataDir),
		stringField("Editor", &config.Editor),
		engine,
		stringField("Store.Path", &config.Store.Path),
		stringField("Store.Redis.Addr", &config.Store.Redis.Addr),
		intField("Store.Redis.DB", &config.Store.Redis.DB),
		stringField("Store.Redis.Prefix", &config.Store.Redis.Prefix),
		stringField("Server.Addr", &config.Server.Addr),
		stringField("Server.PublicDir", &config.Server.PublicDir),
		boolField("Backup.Enable", &config.Backup.Enable),
		backupTime,
		intField("Backup.Retention", &config.Backup.Retention),
		stringField("Backup.BackupDir", &config.Backup.BackupDir),
		stringField("Export.Dir", &config.Export.Dir),
		stringField("Export.Bucket", &config.Export.Bucket),
		stringField("Export.Prefix", &config.Export.Prefix),
		stringField("Export.AWSProfile", &config.Export.AWSProfile),
		stringField("Export.AWSRegion", &config.Export.AWSRegion),
		stringField("Log.File", &config.Log.File),
		stringField("Log.Level", &config.Log.Level),
	}
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure config.yaml interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := store.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		fmt.Println(configPath)

		config, err := store.LoadConfigFile(configPath)
		if err != nil {
			return err
		}

		editor := newFieldEditor("📄 Configure DaySpark", configFields(config), func() error {
			return store.SaveConfigFile(configPath, *config)
		})
		saved, err := runFieldEditor(editor)
		if err != nil {
			return err
		}
		if saved {
			fmt.Println("✅ Config saved:", configPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
