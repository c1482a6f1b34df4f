package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-classic/internal/app"
	"github.com/vancomm/minesweeper-classic/internal/config"
	"github.com/vancomm/minesweeper-classic/internal/mines"
)

var (
	log = logrus.New()

	configPath string
	envPath    string
)

func init() {
	const (
		defaultConfigPath = "config.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.StringVar(&envPath, "env", ".env", "dotenv file path")
}

func setupLogging(cfg config.Config) error {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	mines.Log.SetLevel(logLevel)
	mines.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if cfg.Log.File == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	mines.Log.AddHook(hook)
	return nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal("unable to open log file: ", err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	a := app.New(log, cfg, mines.NewRand(cfg.Seed))
	if err := a.Start(mainCtx); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
