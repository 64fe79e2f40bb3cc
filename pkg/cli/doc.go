// Package cli implements the stagehttpd command line: the root command
// serves files until asked to quit, "stop" asks a running server to quit,
// and "version" prints build information.
package cli
