package loader

import "errors"

var (
	// ErrNoSourceFiles means a required file pattern matched nothing.
	ErrNoSourceFiles = errors.New("loader: no source files found")

	// ErrNoMeterFile means no meter export exists under the search
	// root.
	ErrNoMeterFile = errors.New("loader: no meter file found")

	// ErrEmptyTurbineGroup means a turbine identifier appeared in the
	// header table with zero matching files; concatenating an empty
	// group is undefined and indicates corrupted discovery data.
	ErrEmptyTurbineGroup = errors.New("loader: turbine has no files")
)
