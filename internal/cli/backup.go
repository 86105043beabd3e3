package cli

import (
	"fmt"

	"github.com/ewanmak/junket/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.Store.DataPath())
	path, err := manager.Create()
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.Store.DataPath())
	backups, err := manager.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Printf("Backups in %s:\n", manager.BackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  (%d bytes)\n", b.Timestamp.Format("2006-01-02 15:04"), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	manager := backup.NewManager(ctx.Store.DataPath())
	if err := manager.Restore(c.Path); err != nil {
		return err
	}
	fmt.Printf("Restored plan data from %s\n", c.Path)
	return nil
}
