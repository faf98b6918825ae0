package cli

import "vregress/internal/config"

// Flags holds command-line flags
type Flags struct {
	Verbose    bool
	Color      bool
	Debug      bool
	Record     bool
	NoSave     bool
	NameFilter string
	TestPath   string
	Limit      int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Verbose:    f.Verbose,
		Color:      f.Color,
		Debug:      f.Debug,
		Record:     f.Record,
		NoSave:     f.NoSave,
		NameFilter: f.NameFilter,
		TestPath:   f.TestPath,
		Limit:      f.Limit,
	}
}
