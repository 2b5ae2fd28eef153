package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/bazaar"
	bazaard "github.com/iov-one/bazaar/cmd/bazaard/app"
	"github.com/iov-one/bazaar/commands"
	"github.com/iov-one/bazaar/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	varHome     *string
	varConfig   *string
	varLogLevel *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".bazaard")
	varHome = flag.String("home", defaultHome, "directory to store files under")
	varConfig = flag.String("config", "", "TOML configuration file (default \"<home>/bazaard.toml\")")
	varLogLevel = flag.String("log_level", "", "log level, overrides the configuration file")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("bazaard")
	fmt.Println("          NFT marketplace node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("testgen   Write sample transactions to a directory")
	fmt.Println("validate  Check that genesis files can be loaded")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.bazaard")
  -config string
        TOML configuration file (default "<home>/bazaard.toml")
  -log_level string
        log level, overrides the configuration file`)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	confPath := *varConfig
	if confPath == "" {
		confPath = filepath.Join(*varHome, "bazaard.toml")
	}
	conf, err := server.LoadConfig(confPath)
	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}
	if *varLogLevel != "" {
		conf.LogLevel = *varLogLevel
	}

	logger, err := server.FilterLogger(
		log.NewTMLogger(log.NewSyncWriter(os.Stdout)).With("module", "bazaar"),
		conf.LogLevel)
	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(bazaard.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(bazaard.GenerateApp, logger, *varHome, conf, rest)
	case "testgen":
		err = commands.TestGenCmd(bazaard.Examples(), rest)
	case "validate":
		err = server.ValidateGenesis(bazaard.Initializers(), rest)
	case "version":
		fmt.Println(bazaar.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
