package db

import (
	"WeTube.com/cmd/model"
	"WeTube.com/pkg/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

var DB *gorm.DB

// Init init DB
func Init() {
	var err error
	dsn := utils.GetMysqlDsn()
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}
	if err = Migrate(DB); err != nil {
		panic(err)
	}
}

// Migrate creates/updates the full schema. Exposed so tests can run it
// against their own connection.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Tag{},
		&model.VideoTag{},
		&model.VideoLike{},
		&model.Comment{},
		&model.Subscription{},
	)
}
