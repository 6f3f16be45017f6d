package version

// version is set at build time using -ldflags "-X github.com/psviderski/blockctl/internal/version.version=vX.Y.Z".
var version string

func String() string {
	return version
}
