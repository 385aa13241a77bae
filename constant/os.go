package constant

// runtime.GOOS values the launcher and terminal helpers branch on.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
