// Package assets pkg/assets/interfaces.go
package assets

//go:generate mockgen -destination=mock_assets.go -package=assets github.com/monitorai/screenwatch/pkg/assets Mover

// Mover relocates and purges registered asset files between folders.
type Mover interface {
	// MoveToFolder relocates the given files into folder. Moving a file
	// that is already there is a no-op; the operation is safe to retry.
	MoveToFolder(fileIDs []string, folder string) error

	// DeleteInFolder removes the subset of the given files that currently
	// live in folder, returning the IDs actually deleted.
	DeleteInFolder(fileIDs []string, folder string) ([]string, error)
}
