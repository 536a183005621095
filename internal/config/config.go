package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the complaint bot
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	LLM       LLMConfig       `mapstructure:"llm"`
	API       APIClientConfig `mapstructure:"api"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds complaint database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// KnowledgeConfig holds knowledge base configuration
type KnowledgeConfig struct {
	DocumentPath string `mapstructure:"document_path"`
	ChunkSize    int    `mapstructure:"chunk_size"`
	ChunkOverlap int    `mapstructure:"chunk_overlap"`
	TopK         int    `mapstructure:"top_k"`
}

// LLMConfig holds embedding and generation provider configuration
type LLMConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	ChatModel      string `mapstructure:"chat_model"`
	TimeoutSecs    int    `mapstructure:"timeout_secs"`
}

// APIClientConfig holds configuration for front-ends talking to the complaint API
type APIClientConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file if specified
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("COMPLAINTBOT")
	v.AutomaticEnv()

	// Read config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// GROQ_API_KEY is the conventional key variable for the generation provider
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)

	v.SetDefault("database.path", "./data/complaints.db")

	v.SetDefault("knowledge.document_path", "./knowledge_base.pdf")
	v.SetDefault("knowledge.chunk_size", 1000)
	v.SetDefault("knowledge.chunk_overlap", 100)
	v.SetDefault("knowledge.top_k", 4)

	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.embedding_model", "text-embedding-3-small")
	v.SetDefault("llm.chat_model", "llama3-8b-8192")
	v.SetDefault("llm.timeout_secs", 30)

	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout_secs", 10)
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
