// Command shuttle is the operator CLI for the file lifecycle tracker. It
// inspects tracked statuses, moves failed files back into circulation, and
// imports or exports the status database as CSV.
package main
