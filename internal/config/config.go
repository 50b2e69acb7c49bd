package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"

	TransportKafka    = "kafka"
	TransportRabbitMQ = "rabbitmq"
	TransportNone     = "none"

	UploaderCloudinary = "cloudinary"
	UploaderS3         = "s3"
	UploaderNone       = "none"
)

type Config struct {
	App struct {
		Env       string `mapstructure:"env"`
		Port      string `mapstructure:"port"`
		ImagesDir string `mapstructure:"images_dir"`
	} `mapstructure:"app"`
	Storage struct {
		Driver              string `mapstructure:"driver"`
		SQLitePath          string `mapstructure:"sqlite_path"`
		AtomicProfileWrites bool   `mapstructure:"atomic_profile_writes"`
	} `mapstructure:"storage"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Reminders struct {
		Transport string `mapstructure:"transport"`
		Hour      int    `mapstructure:"hour"`
		Minute    int    `mapstructure:"minute"`
	} `mapstructure:"reminders"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	RabbitMQ struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"rabbitmq"`
	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		From     string `mapstructure:"from"`
		To       string `mapstructure:"to"`
	} `mapstructure:"smtp"`
	Uploader struct {
		Provider string `mapstructure:"provider"`
	} `mapstructure:"uploader"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	S3 struct {
		Bucket    string `mapstructure:"bucket"`
		Region    string `mapstructure:"region"`
		Endpoint  string `mapstructure:"endpoint"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
		PublicURL string `mapstructure:"public_url"`
	} `mapstructure:"s3"`
	HTTPClient struct {
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"http_client"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.images_dir", "data/profile_images")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "data/portfolio.db")
	v.SetDefault("storage.atomic_profile_writes", false)
	v.SetDefault("redis.db", 0)
	v.SetDefault("reminders.transport", TransportNone)
	v.SetDefault("reminders.hour", 9)
	v.SetDefault("reminders.minute", 0)
	v.SetDefault("kafka.group_id", "reminder-dispatcher-group")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("uploader.provider", UploaderNone)
	v.SetDefault("s3.region", "auto")
	v.SetDefault("http_client.timeout", 30*time.Second)
}

// LoadConfig reads .env and config.yaml from path (if present) and applies
// environment overrides on top of the defaults.
func LoadConfig(path string) (cfg Config, err error) {
	if path == "" {
		path = "."
	}

	if err = godotenv.Load(path + "/.env"); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read env only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.images_dir", "IMAGES_DIR")
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.sqlite_path", "SQLITE_PATH")
	v.BindEnv("storage.atomic_profile_writes", "ATOMIC_PROFILE_WRITES")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("reminders.transport", "REMINDERS_TRANSPORT")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("rabbitmq.url", "RABBITMQ_URL")

	v.BindEnv("smtp.host", "SMTP_HOST")
	v.BindEnv("smtp.port", "SMTP_PORT")
	v.BindEnv("smtp.username", "SMTP_USERNAME")
	v.BindEnv("smtp.password", "SMTP_PASSWORD")
	v.BindEnv("smtp.from", "FROM_EMAIL")
	v.BindEnv("smtp.to", "REMINDER_EMAIL")

	v.BindEnv("uploader.provider", "UPLOADER_PROVIDER")
	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	v.BindEnv("s3.bucket", "S3_BUCKET")
	v.BindEnv("s3.region", "S3_REGION")
	v.BindEnv("s3.endpoint", "S3_ENDPOINT")
	v.BindEnv("s3.access_key", "S3_ACCESS_KEY")
	v.BindEnv("s3.secret_key", "S3_SECRET_KEY")
	v.BindEnv("s3.public_url", "S3_PUBLIC_URL")

	v.BindEnv("jaeger.otlp_endpoint", "OTLP_ENDPOINT")

	err = v.Unmarshal(&cfg)
	return
}
