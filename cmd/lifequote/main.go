// Package main is the entry point for lifequote.
//
// lifequote compares term life insurance plans. It runs the quote API and
// offers seed and quote commands against the configured document store or,
// with --server, against a running service.
//
// Usage:
//
//	lifequote serve
//	lifequote seed
//	lifequote quote --age 40 --coverage 250000 --term 20
//
// See --help for all available options.
package main

func main() {
	Execute()
}
