// Package flightfeatures turns raw flight form input into the numeric feature
// set consumed by the delay and fare prediction models.
//
// Every function in this package is pure: the result depends only on the
// arguments, nothing is cached and nothing is shared between calls, so the
// functions can be used from any number of goroutines.
package flightfeatures
