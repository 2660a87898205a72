package cli

// Program names, used as the prefix of every diagnostic.
const (
	MkdirProgram   = "mkdir"
	MbprobeProgram = "mbprobe"
)

// Values of the diagnostics level.
const (
	levelDefault = "info"
	levelDebug   = "debug"
)

// defaultContextArg is what --context stores when it is given without a
// value.
const defaultContextArg = "default"

// tryHelpFormat follows every usage error.
const tryHelpFormat = "Try '%s --help' for more information.\n"
