package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	Server      ServerConfig  `yaml:"server"`
	GeminiModel string        `yaml:"gemini_model"`
	Chat        ChatConfig    `yaml:"chat"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`

	// AllowedOrigins 는 브라우저 프론트엔드의 CORS 허용 오리진 목록이다.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ChatConfig 는 채팅 오케스트레이션 관련 설정이다.
type ChatConfig struct {
	// GuidanceDelayMs 는 이미지 없이 텍스트만 보냈을 때
	// 안내 메시지를 붙이기까지의 지연(ms)이다. 0 이하면 기본값 600ms.
	GuidanceDelayMs int `yaml:"guidance_delay_ms"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.5-flash-image"
	}
	if c.Chat.GuidanceDelayMs <= 0 {
		c.Chat.GuidanceDelayMs = 600
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
