package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type seedOptions struct {
	file     string
	mongoURI string
	database string
	drop     bool
	timeout  time.Duration
}

func newSeedCmd(logger func() *zap.Logger) *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data from a TOML file",
		Long: `Load users, campgrounds and their comments from a TOML file.

Campgrounds go through the same store the web app uses, so they get
slugs and comment links exactly as if they had been created in the UI.
Existing users with the same username are reused.

Examples:
  yelpcampctl seed --file seeds.toml
  yelpcampctl seed --file seeds.toml --drop
  yelpcampctl seed --file seeds.toml --mongo-uri mongodb://db:27017 --db yelp_camp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts, logger())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "seeds.toml", "Seed file")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", envOr("YELPCAMP_MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	cmd.Flags().StringVar(&opts.database, "db", envOr("YELPCAMP_MONGO_DATABASE", "yelp_camp"), "MongoDB database name")
	cmd.Flags().BoolVar(&opts.drop, "drop", false, "Drop campgrounds, comments and users before seeding")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Overall deadline")
	return cmd
}

func runSeed(cmd *cobra.Command, opts seedOptions, logger *zap.Logger) error {
	// Read and validate the file before touching the database.
	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	sf, err := DecodeSeedFile(f)
	f.Close()
	if err != nil {
		return err
	}

	if err := wafflemongo.ValidateURI(opts.mongoURI); err != nil {
		return fmt.Errorf("invalid --mongo-uri: %w", err)
	}
	if opts.database == "" {
		return fmt.Errorf("--db must not be empty")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.mongoURI).SetAppName("yelpcampctl"))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}

	seeder := NewSeeder(client.Database(opts.database), logger)
	seeder.Drop = opts.drop
	res, err := seeder.Run(ctx, sf)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "users: %d created, %d existing\n", res.Users, res.ExistingUsers)
	fmt.Fprintf(out, "campgrounds: %d created, %d total\n", res.Campgrounds, res.TotalCampgrounds)
	for _, s := range res.Slugs {
		fmt.Fprintf(out, "  /campgrounds/%s\n", s)
	}
	fmt.Fprintf(out, "comments: %d\n", res.Comments)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
