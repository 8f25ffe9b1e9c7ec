// @title Habit Rabbit API
// @description Simple daily habit tracker API
// @BasePath /
// @schemes http
package main

import (
	"log"

	"github.com/hopfield/habitrabbit/internal/api"
	"github.com/hopfield/habitrabbit/internal/repository"
	"github.com/hopfield/habitrabbit/internal/service"
	"github.com/hopfield/habitrabbit/pkg/cleanup"
	"github.com/hopfield/habitrabbit/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	var habitsRepo repository.HabitsRepositoryI
	var entriesRepo repository.EntriesRepositoryI
	switch driver := cfg.GetStringDefault("DB_DRIVER", "sqlite"); driver {
	case "postgres":
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		habitsRepo = repository.NewHabitsRepo(&dbCfg)
		entriesRepo = repository.NewEntriesRepo(&dbCfg)
	case "sqlite":
		db, err := repository.NewSQLiteDB(cfg.GetStringDefault("HABITS_DB_PATH", "./habits.db"))
		if err != nil {
			log.Fatal("opening habits database error: " + err.Error())
		}
		habitsRepo = repository.NewHabitsSQLiteRepo(db)
		entriesRepo = repository.NewEntriesSQLiteRepo(db)
	default:
		log.Fatal("unknown DB_DRIVER: " + driver)
	}
	serv := api.New(&api.ServicesList{
		HabitsService:  service.NewHabitsService(habitsRepo),
		EntriesService: service.NewEntriesService(habitsRepo, entriesRepo),
	})
	err := serv.Run(cfg.GetStringDefault("API_ADDRESS", ":8000"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
