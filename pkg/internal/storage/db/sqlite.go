package db

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/khosokawa0716/family-album/pkg/configs"
)

// createSQLiteDialector 创建SQLite dialector（纯Go实现，便于树莓派交叉编译）.
func createSQLiteDialector(dsn string) gorm.Dialector {
	return sqlite.Open(dsn)
}

func init() {
	RegisterDialectorFactory(configs.SQLite, createSQLiteDialector)
}
