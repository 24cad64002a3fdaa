package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"wistia-clean/core/bundles"
	"wistia-clean/core/config"
	"wistia-clean/core/database"
	"wistia-clean/core/reconcile"
	"wistia-clean/core/wistia"

	"go.uber.org/zap"
)

// Dumps the Wistia catalog and the computed cleanup plan as JSON without
// deleting anything.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}
	if len(os.Args) > 1 {
		if err := cfg.ApplySettingsFile(os.Args[1]); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	l := zap.NewNop()

	client, err := wistia.NewClient(cfg.Wistia)
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Client().Disconnect(ctx)

	linked, err := bundles.NewMongoStore(db.Collection(cfg.Mongo.Collection)).FindLinkedBundles(ctx)
	if err != nil {
		log.Fatal(err)
	}

	catalog, err := reconcile.LoadCatalog(ctx, client, cfg.Reconcile, l)
	if err != nil {
		log.Fatal(err)
	}

	plan := reconcile.BuildPlan(linked, catalog, cfg.Reconcile, l)

	out := struct {
		Catalog []wistia.Project `json:"catalog"`
		Plan    *reconcile.Plan  `json:"plan"`
	}{catalog, plan}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "%d bundles, %d projects, %d orphaned projects, %d orphaned medias\n",
		len(linked), len(catalog), len(plan.Projects), len(plan.Medias))
}
