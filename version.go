package main

// _version is the version of hilite.
// This is set at build time with -ldflags.
var _version = "dev"
