package config

// Version is reported by `sumtype version`.
// Can be set at build time using: -ldflags "-X github.com/funvibe/sumtype/internal/config.Version=v1.2.3"
var Version = "dev"

// ConfigFileNames are the recognized configuration file names, in lookup order.
var ConfigFileNames = []string{"sumtype.yaml", "sumtype.yml"}

// Built-in type names
const (
	OptionTypeName = "Option"
	SomeCtorName   = "Some"
	NoneCtorName   = "None"
	WildcardName   = "_"
)

// Output settings
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	FormatText = "text"
	FormatJSON = "json"
)

// Exit codes of the sumtype command.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitUsage    = 2
)
