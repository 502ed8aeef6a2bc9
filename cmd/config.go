package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"orderaudit/internal/adapters/out/s3source"
)

const (
	OrdersSourceFile = "file"
	OrdersSourceS3   = "s3"

	defaultReportSchedule = "0 */5 * * * *"
	defaultReportTopSKUs  = 5
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OrdersSource selects the scheduled report input: "file", "s3" or empty for none.
	OrdersSource      string
	OrdersFile        string
	OrdersS3Bucket    string
	OrdersS3Key       string
	OrdersS3Region    string
	OrdersS3Endpoint  string
	OrdersS3PathStyle bool

	// Static S3 credentials. Both empty selects the default AWS credentials chain.
	OrdersS3AccessKeyID     string
	OrdersS3SecretAccessKey string

	ReportSchedule string
	ReportTopSKUs  int
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the environment after loading envFiles. Missing files are
// skipped and variables already set in the process win.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	config := Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        getEnv("DB_SSLMODE", "disable"),
		OrdersSource:     strings.ToLower(os.Getenv("ORDERS_SOURCE")),
		OrdersFile:       os.Getenv("ORDERS_FILE"),
		OrdersS3Bucket:   os.Getenv("ORDERS_S3_BUCKET"),
		OrdersS3Key:      os.Getenv("ORDERS_S3_KEY"),
		OrdersS3Region:   os.Getenv("ORDERS_S3_REGION"),
		OrdersS3Endpoint: os.Getenv("ORDERS_S3_ENDPOINT"),
		ReportSchedule:   getEnv("REPORT_SCHEDULE", defaultReportSchedule),
		ReportTopSKUs:    defaultReportTopSKUs,

		OrdersS3AccessKeyID:     os.Getenv("ORDERS_S3_ACCESS_KEY_ID"),
		OrdersS3SecretAccessKey: os.Getenv("ORDERS_S3_SECRET_ACCESS_KEY"),
	}

	if (config.OrdersS3AccessKeyID == "") != (config.OrdersS3SecretAccessKey == "") {
		return Config{}, errors.New("ORDERS_S3_ACCESS_KEY_ID and ORDERS_S3_SECRET_ACCESS_KEY must be set together")
	}

	if v := os.Getenv("ORDERS_S3_PATH_STYLE"); v != "" {
		pathStyle, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("ORDERS_S3_PATH_STYLE: %w", err)
		}
		config.OrdersS3PathStyle = pathStyle
	}

	if v := os.Getenv("REPORT_TOP_SKUS"); v != "" {
		top, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("REPORT_TOP_SKUS: %w", err)
		}
		if top < 0 {
			return Config{}, fmt.Errorf("REPORT_TOP_SKUS: %d is negative", top)
		}
		config.ReportTopSKUs = top
	}

	switch config.OrdersSource {
	case "", OrdersSourceFile, OrdersSourceS3:
	default:
		return Config{}, fmt.Errorf("ORDERS_SOURCE: unknown source %q", config.OrdersSource)
	}

	return config, nil
}

// S3Source maps the ORDERS_S3_* settings to the s3 order source.
func (c Config) S3Source() s3source.Config {
	return s3source.Config{
		Region:          c.OrdersS3Region,
		Bucket:          c.OrdersS3Bucket,
		Key:             c.OrdersS3Key,
		Endpoint:        c.OrdersS3Endpoint,
		AccessKeyID:     c.OrdersS3AccessKeyID,
		SecretAccessKey: c.OrdersS3SecretAccessKey,
		PathStyle:       c.OrdersS3PathStyle,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
