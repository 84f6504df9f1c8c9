package cmd

import "fmt"

type Config struct {
	HTTPPort                     string
	DBHost                       string
	DBPort                       string
	DBUser                       string
	DBPassword                   string
	DBName                       string
	DBSslMode                    string
	KafkaHost                    string
	KafkaConsumerGroup           string
	KafkaTrackingStartTopic      string
	KafkaHubSegmentDepartedTopic string
	KafkaHubSegmentArrivedTopic  string
	KafkaLastMileDepartedTopic   string
	KafkaLastMileCompletedTopic  string
	HubDeliveryServiceURL        string
	LastMileServiceURL           string
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
