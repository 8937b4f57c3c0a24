package config

import "os"

// ReadOnlyHostedBuild reports whether the build runs on a hosted
// documentation service where the working copy is read only. The READTHEDOCS
// variable is only set in such environments; edit links are suppressed there.
func ReadOnlyHostedBuild() bool {
	return os.Getenv("READTHEDOCS") != ""
}
