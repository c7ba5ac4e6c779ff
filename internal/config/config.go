package config

import (
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/domain/profile"
	"github.com/ilyakaznacheev/cleanenv"
	"time"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type Config struct {
	App struct {
		Env Environment `yaml:"env" env:"ENV" env-required:""`
	} `yaml:"app" env-prefix:"APP_" env-required:""`

	Server struct {
		Host            string        `yaml:"host" env:"HOST" env-default:"localhost"`
		Port            int           `yaml:"port" env:"PORT" env-default:"8080"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	} `yaml:"server" env-prefix:"SERVER_"`

	Tracker struct {
		Timezone string  `yaml:"timezone" env:"TIMEZONE" env-default:"Local"`
		Seed     bool    `yaml:"seed" env:"SEED" env-default:"false"`
		Profile  Profile `yaml:"profile" env-prefix:"PROFILE_"`
	} `yaml:"tracker" env-prefix:"TRACKER_"`
}

// Profile is the profile the tracker starts with.
type Profile struct {
	UserID string  `yaml:"user_id" env:"USER_ID" env-default:"1"`
	Name   string  `yaml:"name" env:"NAME" env-default:"John Doe"`
	Age    int     `yaml:"age" env:"AGE" env-default:"30"`
	Gender string  `yaml:"gender" env:"GENDER" env-default:"male"`
	Weight float64 `yaml:"weight" env:"WEIGHT" env-default:"80"`
	Height float64 `yaml:"height" env:"HEIGHT" env-default:"180"`
	Goal   string  `yaml:"goal" env:"GOAL" env-default:"weight_loss"`

	DailyGoals struct {
		Steps    int `yaml:"steps" env:"STEPS" env-default:"10000"`
		Calories int `yaml:"calories" env:"CALORIES" env-default:"2000"`
		Workouts int `yaml:"workouts" env:"WORKOUTS" env-default:"1"`
		Water    int `yaml:"water" env:"WATER" env-default:"8"`
	} `yaml:"daily_goals" env-prefix:"GOALS_"`
}

func (p Profile) Domain() profile.Profile {
	return profile.Profile{
		UserID: p.UserID,
		Name:   p.Name,
		Age:    p.Age,
		Gender: profile.Gender(p.Gender),
		Weight: p.Weight,
		Height: p.Height,
		Goal:   profile.Goal(p.Goal),
		DailyGoals: profile.DailyGoals{
			Steps:    p.DailyGoals.Steps,
			Calories: p.DailyGoals.Calories,
			Workouts: p.DailyGoals.Workouts,
			Water:    p.DailyGoals.Water,
		},
	}
}

func Load(filePath string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(filePath, cfg); err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	if err := cfg.Tracker.Profile.Domain().Validate(); err != nil {
		return nil, configNotLoadedErr("invalid tracker.profile: %w", err)
	}

	return cfg, nil
}

// Location resolves tracker.timezone. "Local" is the host zone, "" is UTC.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Tracker.Timezone)
	if err != nil {
		return nil, configNotLoadedErr("invalid tracker.timezone %q: %w", c.Tracker.Timezone, err)
	}
	return loc, nil
}

func MustLoad(filePath string) *Config {
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
