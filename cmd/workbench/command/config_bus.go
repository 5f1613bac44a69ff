package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-workbench/internal/messaging"
)

// BusConfig configures the embedded message bus clients use to reach
// workbench sessions. Zero values keep the bus defaults.
type BusConfig struct {
	Name         string `json:"name"`
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`
	MaxPayload   int32  `json:"max_payload"`
}

func (c *BusConfig) validate() error {
	_, err := c.BuildBus()
	return err
}

func (c *BusConfig) options() ([]messaging.BusOpt, error) {
	var opts []messaging.BusOpt
	if c.Name != "" {
		opts = append(opts, messaging.WithBusName(c.Name))
	}
	if c.Host != "" || c.Port != 0 {
		opts = append(opts, messaging.WithListenAddr(c.Host, c.Port))
	}
	if c.StartTimeout != "" {
		d, err := time.ParseDuration(c.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing start_timeout: %w", err)
		}
		opts = append(opts, messaging.WithStartTimeout(d))
	}
	if c.MaxPayload != 0 {
		opts = append(opts, messaging.WithMaxPayload(c.MaxPayload))
	}
	return opts, nil
}

// BuildBus validates the settings and creates the bus. The bus does not
// listen until it is started.
func (c *BusConfig) BuildBus() (*messaging.Bus, error) {
	opts, err := c.options()
	if err != nil {
		return nil, err
	}
	return messaging.NewBus(opts...)
}
