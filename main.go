package main

import (
	"github.com/upnpkit/scpd/cmd"
	"github.com/upnpkit/scpd/internal/config"
)

func main() {
	config.LoadConfig()
	cmd.Execute()
}
