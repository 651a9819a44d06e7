// Package license resolves license identifiers (e.g. "mit", "apache-2.0") to
// license text using the GitHub licenses API. Resolution never fails: any
// non-success response or transport fault degrades to a fixed placeholder that
// asks the user to add the license manually.
package license
