package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fulldump/goconfig"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/stanzalink/bootstrap"
	"github.com/fulldump/stanzalink/configuration"
)

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowConfig {
		json2.MarshalWrite(os.Stderr, c, jsontext.WithIndent("    "))
		fmt.Fprintln(os.Stderr)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	err := bootstrap.Run(c, os.Stdout, logger)
	if err != nil {
		logger.Fatalln("ERROR:", err.Error())
	}
}
