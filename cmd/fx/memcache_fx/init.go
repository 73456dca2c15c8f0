package memcache_fx

import (
	"go.uber.org/fx"
	mem "splyt/pkg/memcache"
)

var Module = fx.Provide(provideJourneyStore)

func provideJourneyStore() *mem.JourneyStore {
	return mem.NewJourneyStore()
}
