package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig  = "config"
	FlagSource  = "source"
	FlagDest    = "dest"
	FlagForce   = "force"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"

	// Flag descriptions
	DescConfig  = "Path to project configuration file"
	DescSource  = "Source directory (overrides configuration)"
	DescDest    = "Destination directory (overrides configuration)"
	DescForce   = "Overwrite existing files"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)
