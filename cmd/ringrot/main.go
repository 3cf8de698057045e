// cmd/ringrot/main.go
package main

import (
	"ringrot/internal/app"
	"ringrot/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
