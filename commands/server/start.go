package server

import (
	"flag"
	"strings"

	"github.com/iov-one/bazaar/broadcast"
	"github.com/iov-one/bazaar/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagBind         = "bind"
	flagDebug        = "debug"
	flagKafkaBrokers = "kafka_brokers"
	flagKafkaTopic   = "kafka_topic"
)

// Options are the settings an application is generated with.
type Options struct {
	// Home is the directory the application state is stored in. An empty
	// value keeps the state in memory.
	Home   string
	Logger log.Logger
	// Debug returns the full error stack in failed responses.
	Debug bool
	// Publisher receives the events of every committed block.
	Publisher broadcast.Publisher
}

// AppGenerator lets us lazily initialize app, using home dir
// and logger potentially initialized with other flags
type AppGenerator func(*Options) (abci.Application, error)

// parseStartFlags overlays the command line flags on the start and kafka
// sections of the configuration.
func parseStartFlags(conf Config, args []string) (Config, error) {
	brokers := strings.Join(conf.Kafka.Brokers, ",")

	startFlags := flag.NewFlagSet("start", flag.ContinueOnError)
	startFlags.StringVar(&conf.Start.Bind, flagBind, conf.Start.Bind, "address server listens on")
	startFlags.BoolVar(&conf.Start.Debug, flagDebug, conf.Start.Debug, "call stack returned on error")
	startFlags.StringVar(&brokers, flagKafkaBrokers, brokers, "comma separated kafka brokers, publishing is disabled if empty")
	startFlags.StringVar(&conf.Kafka.Topic, flagKafkaTopic, conf.Kafka.Topic, "kafka topic events are published to")
	if err := startFlags.Parse(args); err != nil {
		return conf, errors.Wrap(errors.ErrInput, err.Error())
	}

	conf.Kafka.Brokers = nil
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			conf.Kafka.Brokers = append(conf.Kafka.Brokers, b)
		}
	}
	return conf, nil
}

// NewPublisher returns a kafka publisher if any broker is configured and a
// publisher dropping all events otherwise.
func NewPublisher(conf KafkaConfig) (broadcast.Publisher, error) {
	if len(conf.Brokers) == 0 {
		return broadcast.NopPublisher{}, nil
	}
	return broadcast.NewKafkaPublisher(conf.Brokers, conf.Topic)
}

// StartCmd initializes the application and runs the ABCI server until the
// process receives a termination signal.
func StartCmd(gen AppGenerator, logger log.Logger, home string, conf Config, args []string) error {
	conf, err := parseStartFlags(conf, args)
	if err != nil {
		return err
	}

	publisher, err := NewPublisher(conf.Kafka)
	if err != nil {
		return err
	}
	if len(conf.Kafka.Brokers) != 0 {
		logger.Info("Publishing events", "brokers", strings.Join(conf.Kafka.Brokers, ","), "topic", conf.Kafka.Topic)
	}

	app, err := gen(&Options{
		Home:      home,
		Logger:    logger,
		Debug:     conf.Start.Debug,
		Publisher: publisher,
	})
	if err != nil {
		publisher.Close()
		return err
	}

	logger.Info("Starting ABCI app", "bind", conf.Start.Bind)

	svr, err := server.NewServer(conf.Start.Bind, "socket", app)
	if err != nil {
		publisher.Close()
		return errors.Wrap(err, "cannot create listener")
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		publisher.Close()
		return errors.Wrap(err, "cannot start server")
	}

	cmn.TrapSignal(logger, func() {
		if err := svr.Stop(); err != nil {
			logger.Error("cannot stop server", "err", err)
		}
		if err := publisher.Close(); err != nil {
			logger.Error("cannot close publisher", "err", err)
		}
	})

	// Run forever.
	select {}
}
