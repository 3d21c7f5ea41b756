package main

import (
	"github.com/gin-gonic/gin"

	"github.com/somosmas/ong-api/server"
	"github.com/somosmas/ong-api/storage"
	"github.com/somosmas/ong-api/utils"
	"github.com/somosmas/ong-api/utils/dotenv"
	Flag "github.com/somosmas/ong-api/utils/flag"
	. "github.com/somosmas/ong-api/utils/log"
)

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	if !Flag.IsDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to database: ", err)
	}
	if err := utils.AutoMigrate(db); err != nil {
		Log.Fatal("fail to migrate database: ", err)
	}
	if err := utils.Seed(db); err != nil {
		Log.Fatal("fail to seed database: ", err)
	}

	images, err := storage.NewImageStoreFromEnv()
	if err != nil {
		Log.Fatal("fail to initialize image store: ", err)
	}

	s := server.New(db, images)

	Log.Info("api server starts up")
	s.Router().Run(":8080")
}
