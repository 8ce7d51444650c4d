package config

import (
	"time"
)

const (
	StoreDriverFirestore = "firestore"
	StoreDriverMongoDB   = "mongodb"
	StoreDriverMemory    = "memory"
)

type DatabaseConfig struct {
	Driver           string        `yaml:"driver"`
	OperationTimeout time.Duration `yaml:"operation_timeout"`
	Firebase         *FirebaseConfig
	Mongo            *MongoConfig
	MemorySeedFile   string `yaml:"memory_seed_file"`
}

type FirebaseConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	MaxPoolSize    int           `yaml:"max_pool_size"`
	MinPoolSize    int           `yaml:"min_pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	SocketTimeout  time.Duration `yaml:"socket_timeout"`
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver:           getEnv("STORE_DRIVER", StoreDriverFirestore),
		OperationTimeout: getEnvAsDuration("STORE_OPERATION_TIMEOUT", 10*time.Second),
		Firebase: &FirebaseConfig{
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", "./firebase-adminsdk.json"),
		},
		Mongo: &MongoConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGODB_DATABASE", "ride_admin"),
			MaxPoolSize:    getEnvAsInt("MONGODB_MAX_POOL_SIZE", 100),
			MinPoolSize:    getEnvAsInt("MONGODB_MIN_POOL_SIZE", 5),
			ConnectTimeout: getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
			SocketTimeout:  getEnvAsDuration("MONGODB_SOCKET_TIMEOUT", 30*time.Second),
		},
		MemorySeedFile: getEnv("MEMORY_SEED_FILE", ""),
	}
}
