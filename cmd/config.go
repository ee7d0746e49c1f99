package cmd

type Config struct {
	HTTPPort        string
	MongoURI        string
	MongoDB         string
	OrderServiceURL string
}
