package models

// CellEntry is the fully resolved execution record for one cell.
type CellEntry struct {
	// Cell is the cell identifier.
	Cell string `json:"cell" yaml:"cell"`
	// Fast5Dir is the FAST5 input directory.
	Fast5Dir string `json:"fast5_dir" yaml:"fast5_dir"`
	// Profile is the resolved profile name.
	Profile string `json:"profile" yaml:"profile"`
	// Sample is the sample the cell belongs to.
	Sample string `json:"sample" yaml:"sample"`
	// GuppyDir is the basecaller installation directory from the profile.
	GuppyDir string `json:"guppy_dir" yaml:"guppy_dir"`
	// Cfg is the basecaller configuration name from the profile.
	Cfg string `json:"cfg" yaml:"cfg"`
	// ProfileDict is the full profile, including keys not interpreted here.
	ProfileDict ProfileDict `json:"profile_dict" yaml:"profile_dict"`
}
