// Package server owns the listening socket and the run/stop lifecycle.
//
// A Server answers one connection at a time: the listener admits a single
// connection into service and keep-alives are off, so every connection is
// one request and one response. RequestStop flips the running flag; the
// response being written completes, the listener closes, and Start returns.
// Any connection accepted after the flag flips is closed unanswered.
package server
