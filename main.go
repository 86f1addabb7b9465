package main

import (
	"log"

	"github.com/emitkit/pygen/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
