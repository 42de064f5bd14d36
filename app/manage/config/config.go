package config

import (
	"time"
)

type Config struct {
	// 基础配置
	IsProd bool
	Mode   string `env:"MODE"`

	// 数据库配置
	DBConnectionString string        `env:"DB_CONN,required"`
	WaitInterval       time.Duration `env:"WAIT_INTERVAL" envDefault:"1s"` // 等待数据库时每次尝试的间隔
	WaitTimeout        time.Duration `env:"WAIT_TIMEOUT" envDefault:"1m"`  // 等待数据库的总时长
}
