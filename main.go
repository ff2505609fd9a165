package main

import (
	"github.com/mj1618/keycycle/cmd"
	_ "github.com/mj1618/keycycle/internal/platform/win32"
)

func main() {
	cmd.Execute()
}
