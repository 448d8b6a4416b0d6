package lib

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogTimeFormat = "2006-01-02T15:04:05.000"
)

// ZeroConsoleLog routes the global zerolog logger to a console writer.
func ZeroConsoleLog() {
	log.Logger = log.Output(consoleWriter())
}

// ZeroConsoleAndFileLog routes the global zerolog logger to the console and
// appends to the given log file.
func ZeroConsoleAndFileLog(filename string) {
	var logFile *os.File
	var err error
	if LocalFileExists(filename) {
		logFile, err = os.OpenFile(filename, os.O_WRONLY|os.O_APPEND, 0666)
	} else {
		logFile, err = os.Create(filename)
	}
	if err != nil {
		log.Error().Err(err).Msg("Error setting up log file")
		ZeroConsoleLog()
		return
	}

	mw := io.MultiWriter(logFile, consoleWriter())
	log.Logger = zerolog.New(mw).With().Timestamp().Logger()
}

func consoleWriter() zerolog.ConsoleWriter {
	if runtime.GOOS == "windows" {
		return zerolog.ConsoleWriter{Out: colorable.NewColorableStdout(), TimeFormat: LogTimeFormat}
	}
	return zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false, TimeFormat: LogTimeFormat}
}
