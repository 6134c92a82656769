// cmd/phmm/main.go
package main

import (
	"phmm/internal/app"
	"phmm/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
