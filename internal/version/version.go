package version

// Version is set at build time with -ldflags "-X .../internal/version.Version=...".
var Version = "dev"

func UserAgent() string {
	return "dc/" + Version
}
