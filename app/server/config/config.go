package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境（由 MODE 推导）
		Mode                  string `env:"MODE"`                         // 运行模式，以 p 开头视为生产环境
		Listen                string `env:"LISTEN" envDefault:":1323"`    // 监听地址
		DBConnectionString    string `env:"DB_CONN,required"`             // Postgres 数据库的连接字符串
		RedisConnectionString string `env:"REDIS_CONN,required"`          // Redis 数据库的连接字符串
		MediaBaseURL          string `env:"MEDIA_BASE_URL" envDefault:""` // 图片对外访问的前缀，为空时直接返回对象路径
	}
	Storage struct {
		Endpoint  string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"` // 对象存储地址
		AccessKey string `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`   // 访问密钥
		SecretKey string `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`   // 访问密钥对应的 secret
		Bucket    string `env:"MINIO_BUCKET" envDefault:"recipe-media"`     // 存放菜谱图片的 bucket
		UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`           // 是否使用 HTTPS 连接对象存储
	}
	Security struct {
		// 创建菜谱时是否要求关联的标签与配料属于当前用户
		// 关闭时只检查是否存在，不检查归属
		StrictRelationOwnership bool `env:"STRICT_RELATION_OWNERSHIP" envDefault:"false"`
	}
}
