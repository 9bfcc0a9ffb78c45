package version

import "fmt"

// SatplanVersion indicates what version of satplan the binary belongs to
var SatplanVersion string

// GitCommit indicates which git commit the binary was built from
var GitCommit string

// String returns a pretty string concatenation of SatplanVersion and GitCommit
func String() string {
	return fmt.Sprintf("satplan version: %s\n git commit: %s\n", SatplanVersion, GitCommit)
}
