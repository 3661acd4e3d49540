package main

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellbeat/wellness-api/api"
	"github.com/wellbeat/wellness-api/background"
	"github.com/wellbeat/wellness-api/schema"
	"github.com/wellbeat/wellness-api/score"
	"github.com/wellbeat/wellness-api/store"
)

func initConfig() {
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/wellness-api")

	viper.SetEnvPrefix("wellness")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8089")
	viper.SetDefault("mongo.conn_uri", "mongodb://127.0.0.1:27017")
	viper.SetDefault("mongo.database", "wellness")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("worker.parallelism", 8)
	viper.SetDefault("worker.interval", 24*time.Hour)

	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Info("no config file found, using defaults and environment")
	}
}

// scoringPolicy starts from the calibrated defaults and lets deployment
// configuration override the auditable constants.
func scoringPolicy() score.ScoringPolicy {
	policy := score.DefaultScoringPolicy()

	if viper.IsSet("policy.high_threshold") {
		policy.HighThreshold = viper.GetFloat64("policy.high_threshold")
	}
	if viper.IsSet("policy.low_threshold") {
		policy.LowThreshold = viper.GetFloat64("policy.low_threshold")
	}
	if viper.IsSet("policy.hysteresis_band") {
		policy.HysteresisBand = viper.GetFloat64("policy.hysteresis_band")
	}
	if viper.IsSet("policy.min_aggregate_size") {
		policy.MinAggregateSize = viper.GetInt("policy.min_aggregate_size")
	}
	if viper.IsSet("policy.baseline_window_days") {
		policy.BaselineWindowDays = viper.GetInt("policy.baseline_window_days")
	}
	if viper.IsSet("policy.urgency_window_days") {
		policy.UrgencyWindowDays = viper.GetInt("policy.urgency_window_days")
	}
	if viper.IsSet("policy.version") {
		policy.Version = viper.GetString("policy.version")
	}

	return policy
}

func main() {
	initConfig()

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})

	connURI := viper.GetString("mongo.conn_uri")
	database := viper.GetString("mongo.database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	cancel()
	if err != nil {
		log.WithError(err).Fatal("connect to mongodb")
	}

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("build mongodb indexes")
	}

	mongoStore := store.NewMongoStore(client, database)
	policy := scoringPolicy()

	if viper.GetBool("worker.enabled") {
		worker := background.NewScoreWorker(mongoStore, policy, viper.GetInt("worker.parallelism"))
		go runWorkerLoop(mongoStore, worker, viper.GetDuration("worker.interval"))
	}

	server := api.NewServer(mongoStore, policy, viper.GetBool("server.trace_mode"))

	log.WithField("addr", viper.GetString("server.addr")).Info("starting wellness api")
	if err := server.Run(viper.GetString("server.addr")); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func runWorkerLoop(mongoStore store.WellnessStore, worker *background.ScoreWorker, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		employees, err := mongoStore.ListActiveEmployees()
		if err != nil {
			log.WithError(err).Error("list employees for batch recalculation")
			continue
		}

		if _, _, err := worker.RecalculateAll(context.Background(), employees, time.Now().UTC()); err != nil {
			log.WithError(err).Error("batch recalculation aborted")
		}
	}
}
