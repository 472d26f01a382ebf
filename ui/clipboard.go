package ui

import "github.com/atotto/clipboard"

// Copy puts text on the system clipboard.
func Copy(text string) error {
	return clipboard.WriteAll(text)
}
