package internal

import (
	"time"
)

type Config struct {
	ServerURL        string        `env:"CHAT_SERVER_URL,default=ws://localhost:8080/ws"`
	DisplayName      string        `env:"CHAT_DISPLAY_NAME,required=true"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT,default=10s"`
}
