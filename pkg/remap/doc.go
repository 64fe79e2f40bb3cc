// Package remap maps virtual URL roots to directories outside the document root.
//
// A Table is built once at startup and never changes afterwards, so it can be
// shared by every request without locking. Lookups return tagged results
// instead of errors: a first path segment is either Found in the table or
// NotConfigured, and a remapped file is either FileOK or FileNotFound.
//
// The default table has two roots, "closure" and "jsunit", both pointing at
// <root>/third_party. The full request path, remap root included, is joined
// under the mapped directory:
//
//	/closure/goog/base.js  ->  <root>/third_party/closure/goog/base.js
package remap
