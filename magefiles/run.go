//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Prints statistics for the models named in $OBJVIEW_FILES, or for every model in the asset directory.
func (Run) Info() error {
	args := []string{"run", "main.go"}
	if files := os.Getenv("OBJVIEW_FILES"); files != "" {
		args = append(args, files)
	}
	fmt.Println("Run objview...")
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}

// Watches the asset directory and reloads models as they change.
func (Run) Watch() error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("bin/objview", withArgs("-watch", "assets/models"), withStream()); err != nil {
		return err
	}
	return nil
}
