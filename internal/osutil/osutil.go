package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

const (
	ExitOK    = 0
	ExitError = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)
