package cmd

import (
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/cache"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/compress"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/config"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/index"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/service"
	"github.com/sci2zero/TeslaRIS-backend-sub000/internal/store"
)

// env wires the services over the local database for one command run.
// One-shot commands use the nop cache; the long-running scheduler attaches
// redis instead.
type env struct {
	cnf     *config.Config
	store   store.Store
	index   index.Index
	cache   cache.EntryCache
	dedup   *service.DeduplicationService
	merge   *service.MergeService
	reindex *service.ReindexService
}

func newEnv(withRedis bool) *env {
	cnf := config.LoadConfig()
	db := config.GetDb(cnf)

	gormStore := store.NewGormStore(db)
	gormIndex := index.NewGormIndex(db)

	var entryCache cache.EntryCache = cache.NewNop()
	if withRedis {
		entryCache = cache.NewRedis(cnf.RedisAddr, cnf.RedisPassword, compress.New(cnf.CacheCodec))
	}

	similarity := index.NewTitleSimilarity(gormIndex, cnf.BulkPageSize)

	return &env{
		cnf:     cnf,
		store:   gormStore,
		index:   gormIndex,
		cache:   entryCache,
		dedup:   service.NewDeduplicationService(gormStore, gormIndex, entryCache, similarity, cnf.BulkPageSize),
		merge:   service.NewMergeService(gormStore, gormIndex, entryCache, service.NewNopUserService(), cnf.BulkPageSize),
		reindex: service.NewReindexService(gormStore, gormIndex, entryCache, cnf.BulkPageSize),
	}
}
