package command

import (
	"github.com/pixil98/go-errors"
)

type Config struct {
	Storage StorageConfig `json:"storage"`
	Bus     BusConfig     `json:"bus"`
	Session SessionConfig `json:"session"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Storage.validate())
	el.Add(c.Bus.validate())
	el.Add(c.Session.validate())

	return el.Err()
}
