// Package version defines the current Bazaar version number.
package version

// Number is the current Bazaar version number.
// We use semantic versioning (http://semver.org/).
const Number = "0.1.0"
