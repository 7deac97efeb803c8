package cmd

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	RabbitMQHost             string
	RabbitMQPort             string
	RabbitMQUser             string
	RabbitMQPassword         string
	EventExchange            string
	EventSource              string
	RedisAddr                string
	RedisPassword            string
	MenuKey                  string
	WatchdogThresholdSeconds string
}
