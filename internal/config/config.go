package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	Google Google `koanf:"google"`
	Rooms  Rooms  `koanf:"rooms"`
}

type Google struct {
	ClientId     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
}

type Rooms struct {
	// KnownNames is the fallback classifier for room calendars whose access
	// role is not freeBusyReader. Matched case-insensitively.
	KnownNames []string `koanf:"knownnames"`
	// AccountIndex selects which linked Google account reservation links open
	// against. Most workspace members have the relevant calendar permissions
	// on their secondary account, hence the default of 1. Google falls back
	// to the primary account when no secondary exists.
	AccountIndex int `koanf:"accountindex"`
	// OrganizationCalendar is the shared workspace calendar id, excluded from
	// person-calendar classification.
	OrganizationCalendar string `koanf:"organizationcalendar"`
	// PairingQuery is the text filter used to find "available to pair"
	// announcements in person calendars.
	PairingQuery string `koanf:"pairingquery"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:8181",
		Port: 8181,
		Rooms: Rooms{
			KnownNames: []string{
				"aberto",
				"aperi",
				"bukas",
				"furan",
				"offnen",
				"opfice",
				"Phone Booth 1",
				"Phone Booth 2",
				"Phone Booth 3",
				"Phone Booth 4",
				"Phone Booth 5",
				"Phone Booth 6",
			},
			AccountIndex:         1,
			OrganizationCalendar: "calendar@cos.io",
			PairingQuery:         "available",
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
		Prefix: "COSROOM_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "COSROOM_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
