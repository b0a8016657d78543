package util

import (
	"fmt"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// PromptPassword prompts for password input on the terminal (hides input)
//
//nolint:forbidigo // Password input requires direct terminal I/O
func PromptPassword(prompt string) (string, error) {
	//nolint:forbidigo // Password input requires direct terminal I/O
	fmt.Print(prompt)

	// Read password from terminal (hides input)
	passwordBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	//nolint:forbidigo // Password input requires direct terminal I/O
	fmt.Println() // New line after password input

	return string(passwordBytes), nil
}
