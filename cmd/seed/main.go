// Command seed fills a development database with the fixed rows plus
// sample content. Run once after bringing up a fresh database.
package main

import (
	"github.com/somosmas/ong-api/utils"
	"github.com/somosmas/ong-api/utils/dotenv"
	. "github.com/somosmas/ong-api/utils/log"
)

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to database: ", err)
	}
	if err := utils.AutoMigrate(db); err != nil {
		Log.Fatal("fail to migrate database: ", err)
	}
	if err := utils.SeedDemo(db); err != nil {
		Log.Fatal("fail to seed database: ", err)
	}

	Log.Info("database seeded")
}
