package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/khoahotran/portfolio-showcase/adapters/persistence"
	"github.com/khoahotran/portfolio-showcase/internal/config"
	"github.com/khoahotran/portfolio-showcase/internal/domain/profile"
	"github.com/khoahotran/portfolio-showcase/pkg/logger"
)

func main() {
	clearOnly := flag.Bool("clear", false, "only remove the stored profile")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	store, err := persistence.NewKVStore(cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	repo := persistence.NewKVProfileRepo(store, cfg.Storage.AtomicProfileWrites, appLogger)

	if err := repo.Clear(ctx); err != nil {
		log.Fatalf("cannot clear profile: %v", err)
	}
	if *clearOnly {
		fmt.Println("profile cleared")
		return
	}

	p := profile.Default()
	p.Normalize()
	if err := repo.Save(ctx, p); err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}
	fmt.Printf("seeded default profile '%s' into %s store\n", p.Name, cfg.Storage.Driver)
}
