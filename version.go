package rbtree

// BinaryGitHash is the Git hash of the source the binary was built from.
// It is set by the linker during the official builds.
var BinaryGitHash = "<unknown>"

// BinaryVersion is the version of the library.
var BinaryVersion = "1.0.0"
