package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers understood by repository.NewInventoryRepository.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

type Config struct {
	Port        string
	Environment string
	Timezone    string
	// Static dashboard served under / when set
	DashboardDir string
	// Storage Configuration
	StorageDriver string
	StorageDir    string
	StorageKey    string
	SQLitePath    string
	// Redis Configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	// Kafka Configuration
	UseKafka        bool
	KafkaBrokers    []string
	KafkaTopicItems string
	KafkaTopicStock string
	KafkaClientID   string
	KafkaAcks       string
	KafkaRetries    int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Parse Kafka brokers (comma-separated)
	kafkaBrokersStr := getEnv("KAFKA_BROKERS", "localhost:9093")
	kafkaBrokers := strings.Split(kafkaBrokersStr, ",")
	for i, broker := range kafkaBrokers {
		kafkaBrokers[i] = strings.TrimSpace(broker)
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		Timezone:     getEnv("TIMEZONE", "Local"),
		DashboardDir: getEnv("DASHBOARD_DIR", ""),
		// Storage Configuration
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
		StorageDir:    getEnv("STORAGE_DIR", "./data"),
		StorageKey:    getEnv("STORAGE_KEY", "medical-store-inventory"),
		SQLitePath:    getEnv("SQLITE_PATH", "./medical-store.db"),
		// Redis Configuration
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		// Kafka Configuration
		UseKafka:        getEnvAsBool("USE_KAFKA", false),
		KafkaBrokers:    kafkaBrokers,
		KafkaTopicItems: getEnv("KAFKA_TOPIC_ITEMS", "pharmacy.inventory.items"),
		KafkaTopicStock: getEnv("KAFKA_TOPIC_STOCK", "pharmacy.inventory.stock"),
		KafkaClientID:   getEnv("KAFKA_CLIENT_ID", "medical-store"),
		KafkaAcks:       getEnv("KAFKA_ACKS", "all"),
		KafkaRetries:    getEnvAsInt("KAFKA_RETRIES", 3),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	result, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
