// Package router decides how stagehttpd answers a single request.
//
// For GET requests the Router checks, in order:
//
//  1. the shutdown command: a "quit" query value containing "1" gets an
//     empty 200 response and asks the Stopper to stop the server;
//  2. hidden path patterns, which always answer 404;
//  3. the remap table: a first path segment that is a remap root is served
//     from the mapped directory, or 404 if the file is missing;
//  4. static serving from the document root.
//
// HEAD requests go straight to static serving. Other methods get 501.
package router
