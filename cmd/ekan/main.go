package main

import (
	"os"

	"github.com/Fanaperana/ekan/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
