// Package assets pkg/assets/assets.go manages the asset registry folders:
// where a file is registered decides whether check-frame cleanup may purge
// it and whether it belongs to an incident's media set.
package assets

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/monitorai/screenwatch/pkg/db"
)

// Folder names mirror the media areas of the original deployment.
const (
	FolderChecksFrames = "checks_frames"
	FolderIncidents    = "incidents"
)

// Manager implements Mover on top of the file registry and an optional
// on-disk root. With an empty root only the registry is updated, which is
// enough for deployments where an external object store serves the bytes.
type Manager struct {
	store db.Service
	root  string
}

func NewManager(store db.Service, root string) *Manager {
	return &Manager{store: store, root: root}
}

// MoveToFolder is a rename, not a copy. A file already registered in the
// target folder is skipped entirely, so retrying after a partial failure
// converges instead of erroring.
func (m *Manager) MoveToFolder(fileIDs []string, folder string) error {
	ids := compactIDs(fileIDs)
	if len(ids) == 0 {
		return nil
	}

	toMove := make([]string, 0, len(ids))

	for _, id := range ids {
		file, err := m.store.GetFile(id)
		if errors.Is(err, db.ErrNotFound) {
			log.Printf("Assets: file %s not registered, skipping move", id)
			continue
		}

		if err != nil {
			return fmt.Errorf("resolve file %s: %w", id, err)
		}

		if file.Folder == folder {
			continue
		}

		if err := m.renameOnDisk(id, file.Folder, folder); err != nil {
			return err
		}

		toMove = append(toMove, id)
	}

	if len(toMove) == 0 {
		return nil
	}

	if err := m.store.SetFileFolders(toMove, folder); err != nil {
		return fmt.Errorf("update file folders: %w", err)
	}

	log.Printf("Assets: moved %d file(s) to folder %s", len(toMove), folder)

	return nil
}

// DeleteInFolder purges only files currently registered in folder; files
// that have been relocated since (e.g. a frame promoted to incident media)
// are left alone.
func (m *Manager) DeleteInFolder(fileIDs []string, folder string) ([]string, error) {
	ids := compactIDs(fileIDs)
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := m.store.ListFileIDsInFolder(ids, folder)
	if err != nil {
		return nil, fmt.Errorf("list files in folder %s: %w", folder, err)
	}

	if len(found) == 0 {
		return nil, nil
	}

	for _, id := range found {
		m.removeOnDisk(id, folder)
	}

	if err := m.store.DeleteFiles(found); err != nil {
		return nil, fmt.Errorf("delete files: %w", err)
	}

	log.Printf("Assets: deleted %d file(s) from folder %s", len(found), folder)

	return found, nil
}

func (m *Manager) renameOnDisk(id, from, to string) error {
	if m.root == "" {
		return nil
	}

	target := filepath.Join(m.root, to)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("create folder %s: %w", to, err)
	}

	err := os.Rename(filepath.Join(m.root, from, id), filepath.Join(target, id))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("move file %s: %w", id, err)
	}

	return nil
}

func (m *Manager) removeOnDisk(id, folder string) {
	if m.root == "" {
		return
	}

	if err := os.Remove(filepath.Join(m.root, folder, id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Assets: failed to remove file %s from disk: %v", id, err)
	}
}

func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))

	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}

	return out
}
