package session

import (
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"github.com/pkm-kampus/portal/core"
)

type Sweeper interface {
	Sweep() int
}

// StartSweeper runs store.Sweep on the cron spec (e.g. "@every 1m").
// The returned scheduler must be stopped on shutdown.
func StartSweeper(store Sweeper, spec string, logger core.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if n := store.Sweep(); n > 0 {
			logger.Debug("expired sessions removed", map[string]interface{}{"count": n})
		}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scheduling session sweep %q", spec)
	}
	c.Start()
	return c, nil
}
