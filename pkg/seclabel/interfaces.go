//go:generate mockgen -destination=./mocks/seclabel.go -package=mocks . Labeler,Module

package seclabel

import "os"

// Labeler assigns mandatory access control labels to files.
type Labeler interface {
	// SetDefaultContext makes the default label for a new file of the given
	// type at path the creation label of this process. Only the type bits of
	// mode are used.
	SetDefaultContext(path string, mode os.FileMode) error
	// RestoreContext relabels the existing file at path (without following a
	// trailing symlink) with its default label.
	RestoreContext(path string) error
	// Close releases the label database and resets the creation label.
	Close() error
}

// Module is a security module that may be active on this host.
type Module interface {
	// Kind reports which module this is.
	Kind() Kind
	// OpenDefault opens the database used to compute default labels.
	OpenDefault() (Labeler, error)
	// SetCreateContext makes ctx the label of every file this process
	// creates from now on.
	SetCreateContext(ctx string) error
}
