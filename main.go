package main

import (
	"flag"
	"log/slog"
	"os"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	frontend := flag.String("ui", "window", "Front-end: window, terminal or headless")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	rounds := flag.Int("rounds", 0, "Headless rounds to play (0 = use config)")
	recordPath := flag.String("record", "", "Record file (empty = use config)")
	historyPath := flag.String("history", "", "Round history CSV (empty = use config)")
	mute := flag.Bool("mute", false, "Disable sound effects")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (empty = use config)")
	logJSON := flag.Bool("log-json", false, "Log as JSON")
	logFile := flag.String("log-file", "", "Log file (empty = use config)")
	writeConfig := flag.String("write-config", "", "Write the effective config to this path and exit")
	flag.Parse()

	opts := Options{
		ConfigPath:  *configPath,
		Frontend:    *frontend,
		Seed:        *seed,
		Rounds:      *rounds,
		RecordPath:  *recordPath,
		HistoryPath: *historyPath,
		Mute:        *mute,
		LogLevel:    *logLevel,
		LogJSON:     *logJSON,
		LogFile:     *logFile,
		WriteConfig: *writeConfig,
	}

	if err := run(opts); err != nil {
		slog.Error("snake failed", "error", err)
		os.Exit(1)
	}
}
