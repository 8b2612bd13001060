package main

import (
	"os"
	"testing"
)

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()

	if env.Now == nil || env.NewConverter == nil {
		t.Fatal("DefaultEnv() left Now or NewConverter nil")
	}
	if env.Stdin != os.Stdin || env.Stdout != os.Stdout || env.Stderr != os.Stderr {
		t.Error("DefaultEnv() should use the process streams")
	}
}
