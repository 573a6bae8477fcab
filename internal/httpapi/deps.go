package httpapi

import (
	"sync/atomic"

	"waitlist-engine/internal/boinord"
	"waitlist-engine/internal/config"
	"waitlist-engine/internal/events"
	"waitlist-engine/internal/poll"

	"go.uber.org/zap"
)

type Deps struct {
	Fetcher     poll.Fetcher
	Credentials func() (boinord.Credentials, error)

	Poller *poll.Poller
	Hub    *events.Hub

	// Atomic stores
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	Log *zap.Logger
}
