package cresttools

// version is stamped at release time via -ldflags; source builds report
// "dev".
var version = "dev"

// Version reports the module version.
func Version() string {
	return version
}
