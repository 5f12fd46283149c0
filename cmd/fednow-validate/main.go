// Command fednow-validate walks a directory of JSON message samples,
// validates each one, and reports the results. It exits non-zero when any
// sample fails validation.
package main

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/openfin/fednowmsg"
	"github.com/openfin/fednowmsg/pkg/config"
	"github.com/openfin/fednowmsg/pkg/constraint"
	"github.com/openfin/fednowmsg/pkg/logger"
)

type appConfig struct {
	SamplesDir string `env:"SAMPLES_DIR" envDefault:"./samples"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
	)

	valid, invalid, err := run(log, cfg.SamplesDir)
	if err != nil {
		log.Error("validation run failed", "error", err)
		os.Exit(2)
	}
	log.Info("validation run complete", "valid", valid, "invalid", invalid)
	if invalid > 0 {
		os.Exit(1)
	}
}

func run(log *slog.Logger, dir string) (valid, invalid int, err error) {
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var msg fednowmsg.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			invalid++
			log.Warn("failed to decode sample", "file", path, "error", err)
			return nil
		}

		if err := msg.Validate(); err != nil {
			invalid++
			if verr := constraint.ExtractValidationError(err); verr != nil {
				log.Warn("sample failed validation",
					"file", path,
					"path", verr.Path,
					"code", verr.Code,
					"message", verr.Message,
				)
			} else {
				log.Warn("sample failed validation", "file", path, "error", err)
			}
			return nil
		}

		valid++
		log.Debug("sample is valid", "file", path)
		return nil
	})
	return valid, invalid, err
}
