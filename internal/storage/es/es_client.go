package es

import "github.com/elastic/go-elasticsearch/v8"

const DefaultIndexName = "evaluations"

type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func (c ClientConfig) indexName() string {
	if c.IndexName == "" {
		return DefaultIndexName
	}
	return c.IndexName
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
