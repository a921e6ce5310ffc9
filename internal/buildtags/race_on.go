//go:build race

package buildtags

// Race is true if the binary was built with the "race" build tag.
const Race = true
