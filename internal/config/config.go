package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	API      API      `koanf:"api"`
	Auth     Auth     `koanf:"auth"`
	Calendar Calendar `koanf:"calendar"`
}

type API struct {
	BaseURL        string `koanf:"baseurl"`
	TimeoutSeconds int    `koanf:"timeoutseconds"`
}

type Auth struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

type Calendar struct {
	WeekFirstDay string `koanf:"weekfirstday"`
}

// Timeout returns the per-request transport timeout.
func (a API) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// WeekFirstWeekday resolves the configured week start day name to a
// time.Weekday. Unknown names fall back to Monday.
func (c Calendar) WeekFirstWeekday() time.Weekday {
	days := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	if day, ok := days[strings.ToLower(c.WeekFirstDay)]; ok {
		return day
	}
	log.Warnf("unknown week first day %q, falling back to Monday", c.WeekFirstDay)
	return time.Monday
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		API: API{
			BaseURL:        "http://localhost:8000/api",
			TimeoutSeconds: 10,
		},
		Calendar: Calendar{
			WeekFirstDay: "monday",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "SLOTBOOK_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "SLOTBOOK_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return app, nil
}
