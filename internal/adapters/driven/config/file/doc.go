// Package file provides file-backed configuration and prompt stores under
// the user's ~/.tquery directory.
package file
