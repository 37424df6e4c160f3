package keychain

const (
	// DefaultService is the OS keychain service under which provider secrets live.
	DefaultService = "task-intelligence"

	accountPrefix = "provider:"
	probeAccount  = "probe"
)
